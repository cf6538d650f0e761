// Package natsevents publishes auction lifecycle events to NATS subjects.
package natsevents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/auction_service/internal/core/ports/events"
	"github.com/nats-io/nats.go"
)

const (
	subjectCreated = "created"
	subjectUpdated = "updated"
	subjectDeleted = "deleted"

	// DefaultSubjectPrefix is used when no prefix is configured.
	DefaultSubjectPrefix = "auctions"

	headerEventType   = "Event-Type"
	headerAuctionID   = "Auction-Id"
	headerPublishedAt = "Published-At"
)

// msgPublisher is the part of *nats.Conn the publisher needs.
type msgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

// Publisher implements events.AuctionEventPublisher on a NATS connection.
type Publisher struct {
	conn   msgPublisher
	prefix string
	now    func() time.Time
}

var _ events.AuctionEventPublisher = (*Publisher)(nil)

// NewPublisher wraps an established connection. An empty prefix falls back to DefaultSubjectPrefix.
func NewPublisher(conn *nats.Conn, prefix string) *Publisher {
	return newPublisher(conn, prefix)
}

func newPublisher(conn msgPublisher, prefix string) *Publisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &Publisher{conn: conn, prefix: prefix, now: time.Now}
}

// Connect dials the NATS server at url with reconnects enabled and logs connection state changes.
func Connect(url string, logger *slog.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("auction_service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return nc, nil
}

// Subject returns the full subject for an event kind, e.g. "auctions.created".
func (p *Publisher) Subject(kind string) string {
	return p.prefix + "." + kind
}

func (p *Publisher) PublishAuctionCreated(ctx context.Context, evt events.AuctionCreated) error {
	return p.publish(ctx, subjectCreated, evt.ID, evt)
}

func (p *Publisher) PublishAuctionUpdated(ctx context.Context, evt events.AuctionUpdated) error {
	return p.publish(ctx, subjectUpdated, evt.ID, evt)
}

func (p *Publisher) PublishAuctionDeleted(ctx context.Context, evt events.AuctionDeleted) error {
	return p.publish(ctx, subjectDeleted, evt.ID, evt)
}

func (p *Publisher) publish(ctx context.Context, kind, auctionID string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", kind, err)
	}

	msg := nats.NewMsg(p.Subject(kind))
	msg.Data = data
	msg.Header.Set(headerEventType, kind)
	msg.Header.Set(headerAuctionID, auctionID)
	msg.Header.Set(headerPublishedAt, p.now().UTC().Format(time.RFC3339Nano))

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", msg.Subject, err)
	}
	return nil
}

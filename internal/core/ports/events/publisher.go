package events

import (
	"context"
	"time"
)

// AuctionCreated is published after a new auction has been committed.
type AuctionCreated struct {
	ID             string    `json:"id"`
	ReservePrice   int       `json:"reservePrice"`
	Seller         string    `json:"seller"`
	Winner         *string   `json:"winner"`
	SoldAmount     *int      `json:"soldAmount"`
	CurrentHighBid *int      `json:"currentHighBid"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	AuctionEnd     time.Time `json:"auctionEnd"`
	Status         string    `json:"status"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Color          string    `json:"color"`
	Mileage        int       `json:"mileage"`
	ImageURL       string    `json:"imageUrl"`
}

// AuctionUpdated is published after the item of an auction has changed.
type AuctionUpdated struct {
	ID      string `json:"id"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Color   string `json:"color"`
	Mileage int    `json:"mileage"`
	Year    int    `json:"year"`
}

// AuctionDeleted is published after an auction has been removed.
type AuctionDeleted struct {
	ID string `json:"id"`
}

// AuctionEventPublisher announces committed auction changes to other services.
type AuctionEventPublisher interface {
	PublishAuctionCreated(ctx context.Context, evt AuctionCreated) error
	PublishAuctionUpdated(ctx context.Context, evt AuctionUpdated) error
	PublishAuctionDeleted(ctx context.Context, evt AuctionDeleted) error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

var _ AuctionEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishAuctionCreated(context.Context, AuctionCreated) error { return nil }
func (NoopPublisher) PublishAuctionUpdated(context.Context, AuctionUpdated) error { return nil }
func (NoopPublisher) PublishAuctionDeleted(context.Context, AuctionDeleted) error { return nil }

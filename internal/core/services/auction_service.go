package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/auction_service/internal/apperrors"
	"github.com/SscSPs/auction_service/internal/core/domain"
	"github.com/SscSPs/auction_service/internal/core/ports/events"
	portsrepo "github.com/SscSPs/auction_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/auction_service/internal/core/ports/services"
	"github.com/SscSPs/auction_service/internal/dto"
	"github.com/google/uuid"
)

type auctionService struct {
	BaseService
	auctionRepo portsrepo.AuctionRepositoryFacade
	publisher   events.AuctionEventPublisher
	now         func() time.Time
	newID       func() string
}

// AuctionServiceOption is a functional option for configuring the auction service
type AuctionServiceOption func(*auctionService)

// WithEventPublisher sets the publisher notified after each committed change.
func WithEventPublisher(p events.AuctionEventPublisher) AuctionServiceOption {
	return func(s *auctionService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) AuctionServiceOption {
	return func(s *auctionService) {
		s.now = now
	}
}

// WithIDGenerator overrides how auction and item ids are produced.
func WithIDGenerator(gen func() string) AuctionServiceOption {
	return func(s *auctionService) {
		s.newID = gen
	}
}

// NewAuctionService creates a new auction service with the provided options
func NewAuctionService(repo portsrepo.AuctionRepositoryFacade, options ...AuctionServiceOption) portssvc.AuctionSvcFacade {
	svc := &auctionService{
		auctionRepo: repo,
		publisher:   events.NoopPublisher{},
		now:         time.Now,
		newID:       uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AuctionSvcFacade = (*auctionService)(nil)

func (s *auctionService) ListAuctions(ctx context.Context) ([]domain.Auction, error) {
	auctions, err := s.auctionRepo.ListAuctions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list auctions")
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}
	if auctions == nil {
		auctions = []domain.Auction{}
	}
	s.LogDebug(ctx, "Auctions loaded", slog.Int("count", len(auctions)))
	return auctions, nil
}

func (s *auctionService) GetAuctionByID(ctx context.Context, auctionID string) (*domain.Auction, error) {
	auction, err := s.auctionRepo.FindAuctionByID(ctx, auctionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Auction not found", slog.String("auction_id", auctionID))
		}
		return nil, err
	}
	return auction, nil
}

func (s *auctionService) CreateAuction(ctx context.Context, req dto.CreateAuctionRequest, seller string) (*domain.Auction, error) {
	auctionID := s.newID()
	auction := domain.Auction{
		ID:           auctionID,
		ReservePrice: req.ReservePrice,
		Seller:       seller,
		AuctionEnd:   req.AuctionEnd.UTC(),
		Status:       domain.StatusLive,
		Timestamps:   domain.NewTimestamps(s.now()),
		Item:         dto.NewItemFromRequest(req, s.newID()),
	}

	if err := auction.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	rows, err := s.auctionRepo.SaveAuction(ctx, auction)
	if err != nil {
		s.LogError(ctx, err, "Failed to save auction", slog.String("auction_id", auctionID))
		return nil, fmt.Errorf("failed to save auction: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("could not save auction %s: %w", auctionID, apperrors.ErrNoRowsAffected)
	}

	s.LogInfo(ctx, "Auction created", slog.String("auction_id", auctionID), slog.String("seller", seller))
	s.publishCreated(ctx, &auction)
	return &auction, nil
}

func (s *auctionService) UpdateAuction(ctx context.Context, auctionID string, req dto.UpdateAuctionRequest) (*domain.Auction, error) {
	auction, err := s.auctionRepo.FindAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction.Item == nil {
		return nil, fmt.Errorf("auction %s: %w", auctionID, domain.ErrMissingItem)
	}

	req.ApplyTo(auction.Item)
	auction.Touch(s.now())

	rows, err := s.auctionRepo.UpdateAuction(ctx, *auction)
	if err != nil {
		s.LogError(ctx, err, "Failed to update auction", slog.String("auction_id", auctionID))
		return nil, fmt.Errorf("failed to update auction: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("could not update auction %s: %w", auctionID, apperrors.ErrNoRowsAffected)
	}

	s.LogInfo(ctx, "Auction updated", slog.String("auction_id", auctionID))
	if err := s.publisher.PublishAuctionUpdated(ctx, events.AuctionUpdated{
		ID:      auction.ID,
		Make:    auction.Item.Make,
		Model:   auction.Item.Model,
		Color:   auction.Item.Color,
		Mileage: auction.Item.Mileage,
		Year:    auction.Item.Year,
	}); err != nil {
		s.LogWarn(ctx, err, "Failed to publish auction updated event", slog.String("auction_id", auctionID))
	}
	return auction, nil
}

func (s *auctionService) DeleteAuction(ctx context.Context, auctionID string) error {
	auction, err := s.auctionRepo.FindAuctionByID(ctx, auctionID)
	if err != nil {
		return err
	}

	if !auction.CanDelete() {
		return fmt.Errorf("auction %s has status %s: %w", auctionID, auction.Status, apperrors.ErrAuctionNotLive)
	}

	rows, err := s.auctionRepo.DeleteAuction(ctx, auctionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete auction", slog.String("auction_id", auctionID))
		return fmt.Errorf("failed to delete auction: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("could not delete auction %s: %w", auctionID, apperrors.ErrNoRowsAffected)
	}

	s.LogInfo(ctx, "Auction deleted", slog.String("auction_id", auctionID))
	if err := s.publisher.PublishAuctionDeleted(ctx, events.AuctionDeleted{ID: auctionID}); err != nil {
		s.LogWarn(ctx, err, "Failed to publish auction deleted event", slog.String("auction_id", auctionID))
	}
	return nil
}

func (s *auctionService) publishCreated(ctx context.Context, a *domain.Auction) {
	evt := events.AuctionCreated{
		ID:             a.ID,
		ReservePrice:   a.ReservePrice,
		Seller:         a.Seller,
		Winner:         a.Winner,
		SoldAmount:     a.SoldAmount,
		CurrentHighBid: a.CurrentHighBid,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		AuctionEnd:     a.AuctionEnd,
		Status:         string(a.Status),
		Make:           a.Item.Make,
		Model:          a.Item.Model,
		Year:           a.Item.Year,
		Color:          a.Item.Color,
		Mileage:        a.Item.Mileage,
		ImageURL:       a.Item.ImageURL,
	}
	if err := s.publisher.PublishAuctionCreated(ctx, evt); err != nil {
		s.LogWarn(ctx, err, "Failed to publish auction created event", slog.String("auction_id", a.ID))
	}
}

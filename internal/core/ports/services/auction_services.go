package services

import (
	"context"

	"github.com/SscSPs/auction_service/internal/core/domain"
	"github.com/SscSPs/auction_service/internal/dto"
)

// AuctionReaderSvc defines read operations for auctions
type AuctionReaderSvc interface {
	// ListAuctions returns every auction ordered by item make.
	ListAuctions(ctx context.Context) ([]domain.Auction, error)

	// GetAuctionByID returns a single auction or apperrors.ErrNotFound.
	GetAuctionByID(ctx context.Context, auctionID string) (*domain.Auction, error)
}

// AuctionWriterSvc defines write operations for auctions
type AuctionWriterSvc interface {
	// CreateAuction lists a new Live auction on behalf of seller.
	CreateAuction(ctx context.Context, req dto.CreateAuctionRequest, seller string) (*domain.Auction, error)

	// UpdateAuction applies item changes to an existing auction.
	UpdateAuction(ctx context.Context, auctionID string, req dto.UpdateAuctionRequest) (*domain.Auction, error)

	// DeleteAuction removes a Live auction.
	DeleteAuction(ctx context.Context, auctionID string) error
}

// AuctionSvcFacade combines all auction-related service interfaces
type AuctionSvcFacade interface {
	AuctionReaderSvc
	AuctionWriterSvc
}

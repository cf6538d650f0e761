package repositories

import (
	"context"

	"github.com/SscSPs/auction_service/internal/core/domain"
)

// AuctionReader defines read operations for auction data
type AuctionReader interface {
	// FindAuctionByID retrieves an auction joined with its item. Returns apperrors.ErrNotFound when absent.
	FindAuctionByID(ctx context.Context, auctionID string) (*domain.Auction, error)

	// ListAuctions retrieves all auctions with their items, ordered by item make ascending.
	ListAuctions(ctx context.Context) ([]domain.Auction, error)
}

// AuctionWriter defines write operations for auction data.
// Each method returns the number of rows the commit changed.
type AuctionWriter interface {
	// SaveAuction inserts a new auction and its item.
	SaveAuction(ctx context.Context, auction domain.Auction) (int64, error)

	// UpdateAuction persists the item fields and updatedAt of an existing auction.
	UpdateAuction(ctx context.Context, auction domain.Auction) (int64, error)

	// DeleteAuction hard-deletes an auction; its item goes with it.
	DeleteAuction(ctx context.Context, auctionID string) (int64, error)
}

// AuctionRepositoryFacade combines all auction-related repository interfaces
type AuctionRepositoryFacade interface {
	AuctionReader
	AuctionWriter
}

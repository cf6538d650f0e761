package pgsql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/auction_service/internal/core/domain"
	portsrepo "github.com/SscSPs/auction_service/internal/core/ports/repositories"
	"github.com/SscSPs/auction_service/internal/models"
	"github.com/SscSPs/auction_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const (
	auctionsTable = "auctions"
	itemsTable    = "items"
)

// auctionWithItemColumns is the projection shared by every read; scanAuctionWithItem follows its order.
var auctionWithItemColumns = []string{
	"a.id::text",
	"a.reserve_price",
	"a.seller",
	"a.winner",
	"a.sold_amount",
	"a.current_high_bid",
	"a.created_at",
	"a.updated_at",
	"a.auction_end",
	"a.status",
	"i.id::text",
	"i.make",
	"i.model",
	"i.color",
	"i.mileage",
	"i.year",
	"i.image_url",
}

type PgxAuctionRepository struct {
	BaseRepository
}

// newPgxAuctionRepository creates a new repository for auction data.
func newPgxAuctionRepository(pool DBPool) *PgxAuctionRepository {
	return &PgxAuctionRepository{BaseRepository: newBaseRepository(pool)}
}

// Ensure implementation matches interface
var _ portsrepo.AuctionRepositoryFacade = (*PgxAuctionRepository)(nil)

func (r *PgxAuctionRepository) selectAuctionWithItem() squirrel.SelectBuilder {
	return r.psql.
		Select(auctionWithItemColumns...).
		From(auctionsTable + " a").
		Join(itemsTable + " i ON i.auction_id = a.id")
}

func scanAuctionWithItem(row pgx.Row) (models.AuctionWithItem, error) {
	var m models.AuctionWithItem
	err := row.Scan(
		&m.AuctionID,
		&m.ReservePrice,
		&m.Seller,
		&m.Winner,
		&m.SoldAmount,
		&m.CurrentHighBid,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.AuctionEnd,
		&m.Status,
		&m.Item.ItemID,
		&m.Item.Make,
		&m.Item.Model,
		&m.Item.Color,
		&m.Item.Mileage,
		&m.Item.Year,
		&m.Item.ImageURL,
	)
	m.Item.AuctionID = m.AuctionID
	return m, err
}

// FindAuctionByID retrieves an auction and its item by the auction ID.
func (r *PgxAuctionRepository) FindAuctionByID(ctx context.Context, auctionID string) (*domain.Auction, error) {
	query, args, err := r.selectAuctionWithItem().
		Where(squirrel.Eq{"a.id": auctionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find auction query: %w", err)
	}

	m, err := scanAuctionWithItem(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "auction", auctionID)
	}

	a := mapping.ToDomainAuction(m)
	return &a, nil
}

// ListAuctions retrieves all auctions ordered by item make, byte-wise ascending.
func (r *PgxAuctionRepository) ListAuctions(ctx context.Context) ([]domain.Auction, error) {
	query, args, err := r.selectAuctionWithItem().
		OrderBy(`i.make COLLATE "C" ASC`, "a.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list auctions query: %w", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query auctions: %w", err)
	}
	defer rows.Close()

	modelAuctions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuctionWithItem, error) {
		return scanAuctionWithItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan auctions: %w", err)
	}

	return mapping.ToDomainAuctionSlice(modelAuctions), nil
}

// SaveAuction inserts the auction and its item in one transaction and returns the rows written.
func (r *PgxAuctionRepository) SaveAuction(ctx context.Context, auction domain.Auction) (int64, error) {
	modelAuction, modelItem := mapping.ToModelAuction(auction)

	auctionSQL, auctionArgs, err := r.psql.
		Insert(auctionsTable).
		Columns("id", "reserve_price", "seller", "winner", "sold_amount", "current_high_bid",
			"created_at", "updated_at", "auction_end", "status").
		Values(modelAuction.AuctionID, modelAuction.ReservePrice, modelAuction.Seller, modelAuction.Winner,
			modelAuction.SoldAmount, modelAuction.CurrentHighBid, modelAuction.CreatedAt, modelAuction.UpdatedAt,
			modelAuction.AuctionEnd, modelAuction.Status).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert auction query: %w", err)
	}

	itemSQL, itemArgs, err := r.psql.
		Insert(itemsTable).
		Columns("id", "auction_id", "make", "model", "color", "mileage", "year", "image_url").
		Values(modelItem.ItemID, modelItem.AuctionID, modelItem.Make, modelItem.Model, modelItem.Color,
			modelItem.Mileage, modelItem.Year, modelItem.ImageURL).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert item query: %w", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	auctionTag, err := tx.Exec(ctx, auctionSQL, auctionArgs...)
	if err != nil {
		return 0, mapError(err, "auction", auction.ID)
	}
	itemTag, err := tx.Exec(ctx, itemSQL, itemArgs...)
	if err != nil {
		return 0, mapError(err, "item of auction", auction.ID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return auctionTag.RowsAffected() + itemTag.RowsAffected(), nil
}

// UpdateAuction writes the item fields and the auction's updated_at in one transaction.
func (r *PgxAuctionRepository) UpdateAuction(ctx context.Context, auction domain.Auction) (int64, error) {
	modelAuction, modelItem := mapping.ToModelAuction(auction)

	itemSQL, itemArgs, err := r.psql.
		Update(itemsTable).
		Set("make", modelItem.Make).
		Set("model", modelItem.Model).
		Set("color", modelItem.Color).
		Set("mileage", modelItem.Mileage).
		Set("year", modelItem.Year).
		Where(squirrel.Eq{"auction_id": modelAuction.AuctionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update item query: %w", err)
	}

	auctionSQL, auctionArgs, err := r.psql.
		Update(auctionsTable).
		Set("updated_at", modelAuction.UpdatedAt).
		Where(squirrel.Eq{"id": modelAuction.AuctionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update auction query: %w", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	itemTag, err := tx.Exec(ctx, itemSQL, itemArgs...)
	if err != nil {
		return 0, mapError(err, "item of auction", auction.ID)
	}
	auctionTag, err := tx.Exec(ctx, auctionSQL, auctionArgs...)
	if err != nil {
		return 0, mapError(err, "auction", auction.ID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return itemTag.RowsAffected() + auctionTag.RowsAffected(), nil
}

// DeleteAuction removes the auction row; the items FK cascades.
func (r *PgxAuctionRepository) DeleteAuction(ctx context.Context, auctionID string) (int64, error) {
	query, args, err := r.psql.
		Delete(auctionsTable).
		Where(squirrel.Eq{"id": auctionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete auction query: %w", err)
	}

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "auction", auctionID)
	}
	return tag.RowsAffected(), nil
}

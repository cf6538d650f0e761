package mapping

import (
	"database/sql"

	"github.com/SscSPs/auction_service/internal/core/domain"
	"github.com/SscSPs/auction_service/internal/models"
)

// ToModelAuction converts a domain Auction to its auctions and items rows.
// A nil Item yields a zero models.Item; callers validate the aggregate first.
func ToModelAuction(d domain.Auction) (models.Auction, models.Item) {
	a := models.Auction{
		AuctionID:      d.ID,
		ReservePrice:   d.ReservePrice,
		Seller:         d.Seller,
		Winner:         toNullString(d.Winner),
		SoldAmount:     toNullInt64(d.SoldAmount),
		CurrentHighBid: toNullInt64(d.CurrentHighBid),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		AuctionEnd:     d.AuctionEnd,
		Status:         string(d.Status),
	}

	var i models.Item
	if d.Item != nil {
		i = models.Item{
			ItemID:    d.Item.ID,
			AuctionID: d.ID,
			Make:      d.Item.Make,
			Model:     d.Item.Model,
			Color:     d.Item.Color,
			Mileage:   d.Item.Mileage,
			Year:      d.Item.Year,
		}
		if d.Item.ImageURL != "" {
			i.ImageURL = sql.NullString{String: d.Item.ImageURL, Valid: true}
		}
	}
	return a, i
}

// ToDomainAuction converts a joined auctions/items row to a domain Auction
func ToDomainAuction(m models.AuctionWithItem) domain.Auction {
	return domain.Auction{
		ID:             m.AuctionID,
		ReservePrice:   m.ReservePrice,
		Seller:         m.Seller,
		Winner:         fromNullString(m.Winner),
		SoldAmount:     fromNullInt64(m.SoldAmount),
		CurrentHighBid: fromNullInt64(m.CurrentHighBid),
		AuctionEnd:     m.AuctionEnd,
		Status:         domain.Status(m.Status),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Item: &domain.Item{
			ID:       m.Item.ItemID,
			Make:     m.Item.Make,
			Model:    m.Item.Model,
			Color:    m.Item.Color,
			Mileage:  m.Item.Mileage,
			Year:     m.Item.Year,
			ImageURL: m.Item.ImageURL.String,
		},
	}
}

// ToDomainAuctionSlice converts a slice of joined rows to domain Auctions
func ToDomainAuctionSlice(ms []models.AuctionWithItem) []domain.Auction {
	ds := make([]domain.Auction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuction(m)
	}
	return ds
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNullInt64(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt64(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

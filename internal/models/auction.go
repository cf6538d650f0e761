package models

import (
	"database/sql"
	"time"
)

// Auction is the row shape of the auctions table.
type Auction struct {
	AuctionID      string         `db:"id"`
	ReservePrice   int            `db:"reserve_price"`
	Seller         string         `db:"seller"`
	Winner         sql.NullString `db:"winner"`
	SoldAmount     sql.NullInt64  `db:"sold_amount"`
	CurrentHighBid sql.NullInt64  `db:"current_high_bid"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	AuctionEnd     time.Time      `db:"auction_end"`
	Status         string         `db:"status"`
}

// Item is the row shape of the items table. AuctionID is a unique FK with ON DELETE CASCADE.
type Item struct {
	ItemID    string         `db:"id"`
	AuctionID string         `db:"auction_id"`
	Make      string         `db:"make"`
	Model     string         `db:"model"`
	Color     string         `db:"color"`
	Mileage   int            `db:"mileage"`
	Year      int            `db:"year"`
	ImageURL  sql.NullString `db:"image_url"`
}

// AuctionWithItem is the result of the auctions/items join.
type AuctionWithItem struct {
	Auction
	Item Item
}

package domain

import (
	"errors"
	"time"
)

// Status is the lifecycle state of an auction.
type Status string

const (
	StatusLive          Status = "Live"
	StatusFinished      Status = "Finished"
	StatusReserveNotMet Status = "ReserveNotMet"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusLive, StatusFinished, StatusReserveNotMet:
		return true
	}
	return false
}

// Item describes the goods listed in an auction. Its lifecycle is bound to the owning Auction.
type Item struct {
	ID       string `json:"id"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Color    string `json:"color"`
	Mileage  int    `json:"mileage"`
	Year     int    `json:"year"`
	ImageURL string `json:"imageUrl"`
}

// Auction is the aggregate root of the service.
type Auction struct {
	ID             string    `json:"id"`
	ReservePrice   int       `json:"reservePrice"`
	Seller         string    `json:"seller"`
	Winner         *string   `json:"winner,omitempty"`
	SoldAmount     *int      `json:"soldAmount,omitempty"`
	CurrentHighBid *int      `json:"currentHighBid,omitempty"`
	AuctionEnd     time.Time `json:"auctionEnd"`
	Status         Status    `json:"status"`
	Timestamps
	Item *Item `json:"item"`
}

// ErrMissingItem is returned by Validate when the auction has no item.
var ErrMissingItem = errors.New("auction must have exactly one item")

// IsLive reports whether the auction is still open.
func (a *Auction) IsLive() bool {
	return a.Status == StatusLive
}

// CanDelete reports whether the auction may be removed.
func (a *Auction) CanDelete() bool {
	return a.IsLive()
}

// Validate checks the aggregate invariants that must hold before persisting.
func (a *Auction) Validate() error {
	if a.ID == "" {
		return errors.New("auction id is required")
	}
	if a.Item == nil {
		return ErrMissingItem
	}
	if !a.Status.IsValid() {
		return errors.New("unknown auction status: " + string(a.Status))
	}
	if a.UpdatedAt.Before(a.CreatedAt) {
		return errors.New("updatedAt precedes createdAt")
	}
	return nil
}

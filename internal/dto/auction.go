package dto

import (
	"time"

	"github.com/SscSPs/auction_service/internal/core/domain"
)

// CreateAuctionRequest defines the data needed to list a new auction.
type CreateAuctionRequest struct {
	Make         string    `json:"make" binding:"required,notblank"`
	Model        string    `json:"model" binding:"required,notblank"`
	Color        string    `json:"color" binding:"required,notblank"`
	Mileage      int       `json:"mileage" binding:"gte=0"`
	Year         int       `json:"year" binding:"required,gte=1886,lte=3000"`
	ReservePrice int       `json:"reservePrice" binding:"gte=0"`
	ImageURL     string    `json:"imageUrl" binding:"omitempty,url"`
	AuctionEnd   time.Time `json:"auctionEnd" binding:"required"`
}

// UpdateAuctionRequest defines the item fields that can be changed.
// Make, Model and Color are only applied when present and non-empty.
// Mileage and Year are always written, so omitting them stores zero.
type UpdateAuctionRequest struct {
	Make    *string `json:"make"`
	Model   *string `json:"model"`
	Color   *string `json:"color"`
	Mileage int     `json:"mileage" binding:"gte=0"`
	Year    int     `json:"year" binding:"gte=0"`
}

// AuctionResponse is the flattened projection of an auction and its item.
type AuctionResponse struct {
	ID             string        `json:"id"`
	ReservePrice   int           `json:"reservePrice"`
	Seller         string        `json:"seller"`
	Winner         *string       `json:"winner"`
	SoldAmount     *int          `json:"soldAmount"`
	CurrentHighBid *int          `json:"currentHighBid"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	AuctionEnd     time.Time     `json:"auctionEnd"`
	Status         domain.Status `json:"status"`
	Make           string        `json:"make"`
	Model          string        `json:"model"`
	Year           int           `json:"year"`
	Color          string        `json:"color"`
	Mileage        int           `json:"mileage"`
	ImageURL       string        `json:"imageUrl"`
}

// ToAuctionResponse converts a domain.Auction to AuctionResponse DTO
func ToAuctionResponse(a *domain.Auction) AuctionResponse {
	resp := AuctionResponse{
		ID:             a.ID,
		ReservePrice:   a.ReservePrice,
		Seller:         a.Seller,
		Winner:         a.Winner,
		SoldAmount:     a.SoldAmount,
		CurrentHighBid: a.CurrentHighBid,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		AuctionEnd:     a.AuctionEnd,
		Status:         a.Status,
	}
	if a.Item != nil {
		resp.Make = a.Item.Make
		resp.Model = a.Item.Model
		resp.Year = a.Item.Year
		resp.Color = a.Item.Color
		resp.Mileage = a.Item.Mileage
		resp.ImageURL = a.Item.ImageURL
	}
	return resp
}

// ToListAuctionResponse converts a slice of domain.Auction to a slice of AuctionResponse DTOs
func ToListAuctionResponse(auctions []domain.Auction) []AuctionResponse {
	res := make([]AuctionResponse, len(auctions))
	for i := range auctions {
		res[i] = ToAuctionResponse(&auctions[i])
	}
	return res
}

// NewItemFromRequest builds the Item of a new auction from the create payload.
func NewItemFromRequest(req CreateAuctionRequest, itemID string) *domain.Item {
	return &domain.Item{
		ID:       itemID,
		Make:     req.Make,
		Model:    req.Model,
		Color:    req.Color,
		Mileage:  req.Mileage,
		Year:     req.Year,
		ImageURL: req.ImageURL,
	}
}

// ApplyTo copies the update onto item.
func (r UpdateAuctionRequest) ApplyTo(item *domain.Item) {
	if r.Make != nil && *r.Make != "" {
		item.Make = *r.Make
	}
	if r.Model != nil && *r.Model != "" {
		item.Model = *r.Model
	}
	if r.Color != nil && *r.Color != "" {
		item.Color = *r.Color
	}
	item.Mileage = r.Mileage
	item.Year = r.Year
}

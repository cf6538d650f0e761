package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/auction_service/internal/apperrors"
	portssvc "github.com/SscSPs/auction_service/internal/core/ports/services"
	"github.com/SscSPs/auction_service/internal/dto"
	"github.com/SscSPs/auction_service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// auctionHandler handles HTTP requests related to auctions.
type auctionHandler struct {
	auctionService portssvc.AuctionSvcFacade
}

// newAuctionHandler creates a new auctionHandler.
func newAuctionHandler(as portssvc.AuctionSvcFacade) *auctionHandler {
	return &auctionHandler{
		auctionService: as,
	}
}

// RegisterAuctionRoutes registers routes related to auctions under rg.
func RegisterAuctionRoutes(rg *gin.RouterGroup, auctionService portssvc.AuctionSvcFacade) {
	registerValidators()
	h := newAuctionHandler(auctionService)

	auctions := rg.Group("/auctions")
	{
		auctions.GET("", h.listAuctions)
		auctions.GET("/:id", h.getAuctionByID)
		auctions.POST("", h.createAuction)
		auctions.PUT("/:id", h.updateAuction)
		auctions.DELETE("/:id", h.deleteAuction)
	}
}

// auctionIDParam reads and checks the :id path parameter, writing a 400 when it is not a UUID.
func auctionIDParam(c *gin.Context, logger *slog.Logger) (string, bool) {
	auctionID := c.Param("id")
	if _, err := uuid.Parse(auctionID); err != nil {
		logger.Warn("Invalid auction ID format", slog.String("auction_id", auctionID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid auction ID format"})
		return "", false
	}
	return auctionID, true
}

// listAuctions godoc
// @Summary List all auctions
// @Description Retrieves every auction with its item, ordered by make
// @Tags auctions
// @Produce  json
// @Success 200 {array} dto.AuctionResponse
// @Failure 500 {object} map[string]string "Failed to list auctions"
// @Router /auctions [get]
func (h *auctionHandler) listAuctions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list auctions")

	auctions, err := h.auctionService.ListAuctions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list auctions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list auctions"})
		return
	}

	resp := dto.ToListAuctionResponse(auctions)
	logger.Info("Auctions listed successfully", slog.Int("count", len(resp)))
	c.JSON(http.StatusOK, resp)
}

// getAuctionByID godoc
// @Summary Get an auction by ID
// @Description Retrieves a single auction with its item
// @Tags auctions
// @Produce  json
// @Param   id path string true "Auction ID (UUID)"
// @Success 200 {object} dto.AuctionResponse
// @Failure 400 {object} map[string]string "Invalid auction ID format"
// @Failure 404 {object} map[string]string "Auction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve auction"
// @Router /auctions/{id} [get]
func (h *auctionHandler) getAuctionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	auctionID, ok := auctionIDParam(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("auction_id", auctionID))

	auction, err := h.auctionService.GetAuctionByID(c.Request.Context(), auctionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Auction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
		} else {
			logger.Error("Failed to get auction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve auction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAuctionResponse(auction))
}

// createAuction godoc
// @Summary Create a new auction
// @Description Lists a new Live auction for the current seller
// @Tags auctions
// @Accept  json
// @Produce  json
// @Param   auction body dto.CreateAuctionRequest true "Auction details"
// @Success 201 {object} dto.AuctionResponse
// @Header  201 {string} Location "URL of the created auction"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "An error occurred while creating the auction"
// @Router /auctions [post]
func (h *auctionHandler) createAuction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAuction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	seller, ok := middleware.GetSellerFromContext(c)
	if !ok {
		logger.Error("Seller identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create auction", slog.String("make", req.Make), slog.String("model", req.Model))

	auction, err := h.auctionService.CreateAuction(c.Request.Context(), req, seller)
	if err != nil {
		if apperrors.IsBadRequest(err) {
			logger.Warn("Could not create auction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create auction"})
		} else {
			logger.Error("Failed to create auction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while creating the auction"})
		}
		return
	}

	logger.Info("Auction created successfully", slog.String("auction_id", auction.ID))
	c.Header("Location", c.FullPath()+"/"+auction.ID)
	c.JSON(http.StatusCreated, dto.ToAuctionResponse(auction))
}

// updateAuction godoc
// @Summary Update an auction's item
// @Description Make, model and color change only when given and non-empty; mileage and year are always written
// @Tags auctions
// @Accept  json
// @Produce  json
// @Param   id path string true "Auction ID (UUID)"
// @Param   auction body dto.UpdateAuctionRequest true "Fields to update"
// @Success 200 {object} dto.AuctionResponse
// @Failure 400 {object} map[string]string "Problem updating auction"
// @Failure 404 {object} map[string]string "Auction not found"
// @Failure 500 {object} map[string]string "An error occurred while updating the auction"
// @Router /auctions/{id} [put]
func (h *auctionHandler) updateAuction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	auctionID, ok := auctionIDParam(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("auction_id", auctionID))

	var req dto.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAuction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	auction, err := h.auctionService.UpdateAuction(c.Request.Context(), auctionID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Auction not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
		case apperrors.IsBadRequest(err):
			logger.Warn("Could not update auction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Problem updating auction"})
		default:
			logger.Error("Failed to update auction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while updating the auction"})
		}
		return
	}

	logger.Info("Auction updated successfully")
	c.JSON(http.StatusOK, dto.ToAuctionResponse(auction))
}

// deleteAuction godoc
// @Summary Delete an auction
// @Description Removes a Live auction and its item
// @Tags auctions
// @Param   id path string true "Auction ID (UUID)"
// @Success 200 "Deleted"
// @Failure 400 {object} map[string]string "Cannot delete finished auction"
// @Failure 404 {object} map[string]string "Auction not found"
// @Failure 500 {object} map[string]string "An error occurred while deleting the auction"
// @Router /auctions/{id} [delete]
func (h *auctionHandler) deleteAuction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	auctionID, ok := auctionIDParam(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("auction_id", auctionID))

	if err := h.auctionService.DeleteAuction(c.Request.Context(), auctionID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Auction not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
		case errors.Is(err, apperrors.ErrAuctionNotLive):
			logger.Warn("Attempted to delete auction that is not live")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete finished auction"})
		case apperrors.IsBadRequest(err):
			logger.Warn("Could not delete auction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Problem deleting auction"})
		default:
			logger.Error("Failed to delete auction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while deleting the auction"})
		}
		return
	}

	logger.Info("Auction deleted successfully")
	c.Status(http.StatusOK)
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "auction-office/internal/models"
	"auction-office/services/auction/helpers"
	"auction-office/utils"
)

type AuctionServiceInterface interface {
	CreateAuction(a model.Auction) (model.Auction, error)
	GetAuction(id string) (model.Auction, error)
	ListAuctions(includeArchived bool) ([]model.Auction, error)
	UpdateAuction(a model.Auction) (model.Auction, error)
	ArchiveAuction(id string) error
	DeleteAuction(id string) error
	AddLot(auctionID string, lot model.Lot) (model.Lot, error)
	UpdateLot(auctionID string, lot model.Lot) (model.Lot, error)
	ArchiveLot(auctionID, lotID string) error
	AssignBidder(auctionID string, b model.Bidder) (model.Bidder, error)
	RecordPayment(auctionID, bidderID string) (model.Bidder, error)
	ListInvoices(includeArchived bool) ([]model.Invoice, error)
	InvoiceStats(includeArchived bool) (model.Stats, error)
	ArchiveInvoice(invoiceID string) error
	UnarchiveInvoice(invoiceID string) error
	ImportLegacySnapshot(data []byte) (int, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	a, err := req.ToModel()
	if err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	created, err := h.service.CreateAuction(a)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.ID,
		"name":       created.Name,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction retrieved successfully")
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	auctions, err := h.service.ListAuctions(includeArchived)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONListResponse(c, http.StatusOK, auctions, len(auctions), "auctions retrieved successfully")
}

// UpdateAuctionHandler handles PUT /auctions/:auction_id
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	a, err := req.ToModel()
	if err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}
	a.ID = auctionID

	updated, err := h.service.UpdateAuction(a)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateAuctionHandler: failed to update auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// ArchiveAuctionHandler handles POST /auctions/:auction_id/archive
func (h *AuctionHandler) ArchiveAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if err := h.service.ArchiveAuction(auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ArchiveAuctionHandler: error archiving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "auction archived successfully")
	helpers.LogSuccess("ArchiveAuctionHandler", "auction archived successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if err := h.service.DeleteAuction(auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteAuctionHandler: error deleting auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
	})
}

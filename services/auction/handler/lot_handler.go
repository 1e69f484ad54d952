package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-office/services/auction/helpers"
	"auction-office/utils"
)

// AddLotHandler handles POST /auctions/:auction_id/lots
func (h *AuctionHandler) AddLotHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddLotHandler", err)
		return
	}

	lot, err := req.ToModel()
	if err != nil {
		helpers.HandleBindError(c, "AddLotHandler", err)
		return
	}

	created, err := h.service.AddLot(auctionID, lot)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AddLotHandler: failed to add lot", map[string]any{
			"auction_id": auctionID,
			"lot_number": req.Number,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "lot added successfully")
	helpers.LogSuccess("AddLotHandler", "lot added successfully", map[string]any{
		"auction_id": auctionID,
		"lot_id":     created.ID,
		"lot_number": created.Number,
	})
}

// UpdateLotHandler handles PUT /auctions/:auction_id/lots/:lot_id
func (h *AuctionHandler) UpdateLotHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	lotID := c.Param("lot_id")

	var req helpers.LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateLotHandler", err)
		return
	}

	lot, err := req.ToModel()
	if err != nil {
		helpers.HandleBindError(c, "UpdateLotHandler", err)
		return
	}
	lot.ID = lotID

	updated, err := h.service.UpdateLot(auctionID, lot)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateLotHandler: failed to update lot", map[string]any{
			"auction_id": auctionID,
			"lot_id":     lotID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "lot updated successfully")
	helpers.LogSuccess("UpdateLotHandler", "lot updated successfully", map[string]any{
		"auction_id": auctionID,
		"lot_id":     lotID,
	})
}

// ArchiveLotHandler handles POST /auctions/:auction_id/lots/:lot_id/archive
func (h *AuctionHandler) ArchiveLotHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	lotID := c.Param("lot_id")

	if err := h.service.ArchiveLot(auctionID, lotID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ArchiveLotHandler: error archiving lot", map[string]any{
			"auction_id": auctionID,
			"lot_id":     lotID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"lot_id": lotID}, "lot archived successfully")
	helpers.LogSuccess("ArchiveLotHandler", "lot archived successfully", map[string]any{
		"auction_id": auctionID,
		"lot_id":     lotID,
	})
}

// AssignBidderHandler handles PUT /auctions/:auction_id/lots/:lot_id/bidder
func (h *AuctionHandler) AssignBidderHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	lotID := c.Param("lot_id")

	var req helpers.BidderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AssignBidderHandler", err)
		return
	}

	bidder, err := h.service.AssignBidder(auctionID, req.ToModel(lotID))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AssignBidderHandler: failed to assign bidder", map[string]any{
			"auction_id": auctionID,
			"lot_id":     lotID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidder, "bidder assigned successfully")
	helpers.LogSuccess("AssignBidderHandler", "bidder assigned successfully", map[string]any{
		"auction_id": auctionID,
		"lot_id":     lotID,
		"bidder_id":  bidder.ID,
	})
}

// RecordPaymentHandler handles POST /auctions/:auction_id/bidders/:bidder_id/payments
func (h *AuctionHandler) RecordPaymentHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bidderID := c.Param("bidder_id")

	bidder, err := h.service.RecordPayment(auctionID, bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RecordPaymentHandler: failed to record payment", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidder, "payment recorded successfully")
	helpers.LogSuccess("RecordPaymentHandler", "payment recorded successfully", map[string]any{
		"auction_id":        auctionID,
		"bidder_id":         bidderID,
		"installments_paid": bidder.InstallmentsPaid,
		"fully_paid":        bidder.FullyPaid,
	})
}

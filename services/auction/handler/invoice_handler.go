package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	model "auction-office/internal/models"
	"auction-office/internal/reports"
	"auction-office/services/auction/helpers"
	"auction-office/utils"
)

// ListInvoicesHandler handles GET /invoices
func (h *AuctionHandler) ListInvoicesHandler(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	invoices, err := h.service.ListInvoices(includeArchived)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListInvoicesHandler: error generating invoices", map[string]any{"error": err.Error()})
		return
	}

	if invoices == nil {
		invoices = []model.Invoice{}
	}

	utils.JSONListResponse(c, http.StatusOK, invoices, len(invoices), "invoices generated successfully")
}

// InvoiceStatsHandler handles GET /invoices/stats
func (h *AuctionHandler) InvoiceStatsHandler(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	stats, err := h.service.InvoiceStats(includeArchived)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("InvoiceStatsHandler: error aggregating invoices", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, stats, "invoice stats computed successfully")
}

// ArchiveInvoiceHandler handles POST /invoices/:invoice_id/archive
func (h *AuctionHandler) ArchiveInvoiceHandler(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	if err := h.service.ArchiveInvoice(invoiceID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ArchiveInvoiceHandler: error archiving invoice", map[string]any{"invoice_id": invoiceID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"invoice_id": invoiceID}, "invoice archived successfully")
	helpers.LogSuccess("ArchiveInvoiceHandler", "invoice archived successfully", map[string]any{
		"invoice_id": invoiceID,
	})
}

// UnarchiveInvoiceHandler handles DELETE /invoices/:invoice_id/archive
func (h *AuctionHandler) UnarchiveInvoiceHandler(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	if err := h.service.UnarchiveInvoice(invoiceID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UnarchiveInvoiceHandler: error unarchiving invoice", map[string]any{"invoice_id": invoiceID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"invoice_id": invoiceID}, "invoice unarchived successfully")
	helpers.LogSuccess("UnarchiveInvoiceHandler", "invoice unarchived successfully", map[string]any{
		"invoice_id": invoiceID,
	})
}

// ExportInvoiceReportHandler handles GET /reports/invoices.xlsx
func (h *AuctionHandler) ExportInvoiceReportHandler(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	invoices, err := h.service.ListInvoices(includeArchived)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ExportInvoiceReportHandler: error generating invoices", map[string]any{"error": err.Error()})
		return
	}

	workbook, err := reports.BuildInvoiceWorkbook(invoices)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "failed to build report")
		utils.Error("ExportInvoiceReportHandler: failed to build workbook", map[string]any{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=invoices.xlsx")
	c.Status(http.StatusOK)
	if err := workbook.Write(c.Writer); err != nil {
		utils.Error("ExportInvoiceReportHandler: failed to write workbook", map[string]any{"error": err.Error()})
		return
	}

	helpers.LogSuccess("ExportInvoiceReportHandler", "report exported successfully", map[string]any{
		"invoice_count": len(invoices),
	})
}

// ImportLegacySnapshotHandler handles POST /imports/legacy
func (h *AuctionHandler) ImportLegacySnapshotHandler(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		helpers.HandleBindError(c, "ImportLegacySnapshotHandler", err)
		return
	}

	imported, err := h.service.ImportLegacySnapshot(data)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ImportLegacySnapshotHandler: failed to import snapshot", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"imported": imported}, "legacy snapshot imported successfully")
	helpers.LogSuccess("ImportLegacySnapshotHandler", "legacy snapshot imported successfully", map[string]any{
		"imported": imported,
	})
}

package server

import (
	"github.com/gin-gonic/gin"

	handler "auction-office/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(service)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.PUT("/:auction_id", auctionHandler.UpdateAuctionHandler)
		auctions.POST("/:auction_id/archive", auctionHandler.ArchiveAuctionHandler)
		auctions.DELETE("/:auction_id", auctionHandler.DeleteAuctionHandler)

		auctions.POST("/:auction_id/lots", auctionHandler.AddLotHandler)
		auctions.PUT("/:auction_id/lots/:lot_id", auctionHandler.UpdateLotHandler)
		auctions.POST("/:auction_id/lots/:lot_id/archive", auctionHandler.ArchiveLotHandler)
		auctions.PUT("/:auction_id/lots/:lot_id/bidder", auctionHandler.AssignBidderHandler)

		auctions.POST("/:auction_id/bidders/:bidder_id/payments", auctionHandler.RecordPaymentHandler)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("", auctionHandler.ListInvoicesHandler)
		invoices.GET("/stats", auctionHandler.InvoiceStatsHandler)
		invoices.POST("/:invoice_id/archive", auctionHandler.ArchiveInvoiceHandler)
		invoices.DELETE("/:invoice_id/archive", auctionHandler.UnarchiveInvoiceHandler)
	}

	reports := router.Group("/reports")
	{
		reports.GET("/invoices.xlsx", auctionHandler.ExportInvoiceReportHandler)
	}

	imports := router.Group("/imports")
	{
		imports.POST("/legacy", auctionHandler.ImportLegacySnapshotHandler)
	}

	return router
}

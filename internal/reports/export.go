// Package reports renders generated invoice views into downloadable report
// files for the back office.
package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"auction-office/internal/models"
)

const sheetName = "Invoices"

var headings = []string{
	"Invoice ID", "Auction", "Lot", "Bidder", "Document",
	"Installment", "Net Value", "Face Value", "Due Date", "Status",
}

// BuildInvoiceWorkbook renders the invoice line items into an XLSX workbook
func BuildInvoiceWorkbook(invoices []models.Invoice) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for col, h := range headings {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for row, inv := range invoices {
		values := []interface{}{
			inv.ID,
			inv.AuctionID,
			inv.LotID,
			inv.BidderName,
			inv.BidderID,
			fmt.Sprintf("%d/%d", inv.InstallmentIndex, inv.InstallmentTotal),
			inv.NetValue.InexactFloat64(),
			inv.FaceValue.InexactFloat64(),
			inv.DueDate.Format("2006-01-02"),
			inv.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cmdcenter/internal/config"
	"cmdcenter/internal/logger"
	"cmdcenter/internal/models"

	"github.com/xuri/excelize/v2"
)

// feedHeaders is the fixed flat layout scored products export to, one
// row per product.
var feedHeaders = []string{
	"Title", "ASIN", "Price", "Compare Price", "Sell Price", "Profit",
	"Profit %", "Image", "Description", "Vendor", "Category", "Tags",
	"Status", "Quantity", "Stock Status", "Gate Count",
}

type Exporter struct {
	config *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config, logger *logger.Logger) *Exporter {
	return &Exporter{
		config: cfg,
		logger: logger,
	}
}

// WriteCSV streams the product feed as CSV.
func (e *Exporter) WriteCSV(w io.Writer, products []*models.Product) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(feedHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range products {
		if err := writer.Write(feedRow(p)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX streams the product feed as a single-sheet workbook.
func (e *Exporter) WriteXLSX(w io.Writer, products []*models.Product) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for col, h := range feedHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i, p := range products {
		for col, v := range feedRow(p) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ExportFeed writes the feed for one import to the configured export
// directory and returns the file path.
func (e *Exporter) ExportFeed(importID string, products []*models.Product) (string, error) {
	if err := os.MkdirAll(e.config.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("feed_%s_%s.csv", importID, time.Now().Format("20060102_150405"))
	path := filepath.Join(e.config.ExportDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create feed file: %w", err)
	}
	defer f.Close()

	if err := e.WriteCSV(f, products); err != nil {
		return "", err
	}

	e.logger.Info("Exported %d products to %s", len(products), path)
	return path, nil
}

func feedRow(p *models.Product) []string {
	return []string{
		p.Title,
		p.ASIN,
		formatMoney(p.Price),
		formatMoney(p.ComparePrice),
		formatMoney(p.SellPrice),
		formatMoney(p.Profit),
		strconv.FormatFloat(p.ProfitPercent, 'f', 1, 64),
		p.Image,
		p.Description,
		p.Vendor,
		p.Category,
		p.Tags,
		p.Status,
		strconv.Itoa(p.Quantity),
		string(p.StockStatus),
		strconv.Itoa(p.GateCount),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

package pipeline

import (
	"fmt"
	"strings"
	"time"

	"cmdcenter/internal/config"
	"cmdcenter/internal/logger"
	"cmdcenter/internal/models"
	"cmdcenter/internal/tabular"
)

// canonicalFieldCount is the width every source schema normalizes down
// to, regardless of how wide the uploaded file was.
const canonicalFieldCount = 11

// Report summarizes one pipeline run over a decoded table.
type Report struct {
	Format           Format            `json:"format"`
	TotalRows        int               `json:"total_rows"`
	TotalCols        int               `json:"total_cols"`
	UniqueProducts   int               `json:"unique_products"`
	RemovedRows      int               `json:"removed_rows"`
	RemovedCols      int               `json:"removed_cols"`
	DetectedFeatures []string          `json:"detected_features"`
	Products         []*models.Product `json:"products"`
	Passed           int               `json:"passed"`
	Failed           int               `json:"failed"`
	Warned           int               `json:"warned"`
	ProcessingTimeMs int64             `json:"processing_time_ms"`
}

// Processor wires the classifier, column mapper, normalizer, cleaner
// and gate evaluator into one synchronous pass over a decoded table.
// Stateless across runs; each Process call carries its own dedup sets.
type Processor struct {
	logger  *logger.Logger
	cleaner *Cleaner
	gates   *GateEvaluator
}

func New(cfg *config.Config, logger *logger.Logger) *Processor {
	markup := DefaultMarkupFactor
	var boilerplate []string
	if cfg != nil {
		if cfg.MarkupFactor > 0 {
			markup = cfg.MarkupFactor
		}
		// Comma-separated override for the boilerplate cut list.
		for _, phrase := range strings.Split(cfg.BoilerplatePhrases, ",") {
			if phrase = strings.ToLower(strings.TrimSpace(phrase)); phrase != "" {
				boilerplate = append(boilerplate, phrase)
			}
		}
	}
	return &Processor{
		logger:  logger,
		cleaner: NewCleaner(boilerplate),
		gates:   NewGateEvaluator(markup),
	}
}

// Gates exposes the evaluator so callers can re-score a product after
// a user edit or force a reprice.
func (p *Processor) Gates() *GateEvaluator {
	return p.gates
}

// Process runs the whole pipeline over a decoded table and assembles
// the import report. It never fails on dirty data: an empty upload
// yields an empty report and per-record quality is expressed entirely
// through gate scores.
func (p *Processor) Process(headers []string, rows []tabular.Row) *Report {
	start := time.Now()

	report := &Report{
		Format:           FormatUnknown,
		TotalRows:        len(rows),
		TotalCols:        len(headers),
		DetectedFeatures: []string{},
		Products:         []*models.Product{},
	}

	if len(headers) == 0 || len(rows) == 0 {
		report.ProcessingTimeMs = time.Since(start).Milliseconds()
		return report
	}

	report.RemovedCols = max(0, len(headers)-canonicalFieldCount)

	// Bare ASIN lists are detected first and trump header
	// classification entirely.
	if LooksLikeASINList(headers, rows) {
		p.processASINList(headers, rows, report)
	} else {
		p.processTable(headers, rows, report)
	}

	p.countGates(report)
	report.ProcessingTimeMs = time.Since(start).Milliseconds()

	p.logger.Info("Processed %d rows: format=%s unique=%d removed=%d passed=%d",
		report.TotalRows, report.Format, report.UniqueProducts, report.RemovedRows, report.Passed)

	return report
}

func (p *Processor) processTable(headers []string, rows []tabular.Row, report *Report) {
	report.Format = Classify(headers)
	cm := MapColumns(headers)

	products, removed := p.normalizeRows(rows, cm)
	report.Products = products
	report.UniqueProducts = len(products)
	report.RemovedRows = removed

	report.DetectedFeatures = append(report.DetectedFeatures, report.Format.Label()+" detected")
	if cm[FieldTopRow] != "" {
		report.DetectedFeatures = append(report.DetectedFeatures, "Variant top-row filtering")
	}
	if cm[FieldDescription] != "" {
		report.DetectedFeatures = append(report.DetectedFeatures, "HTML description cleanup")
	}
	if removed > 0 {
		report.DetectedFeatures = append(report.DetectedFeatures, fmt.Sprintf("%d rows removed", removed))
	}
}

// processASINList scans every cell of every row for ASIN-shaped text
// or Amazon product URLs and builds one minimal draft product per
// distinct ASIN, in first-seen order.
func (p *Processor) processASINList(headers []string, rows []tabular.Row, report *Report) {
	report.Format = FormatASINList

	seen := make(map[string]bool)
	var asins []string
	for _, row := range rows {
		for _, h := range headers {
			asin := ExtractASIN(row[h])
			if asin == "" || seen[asin] {
				continue
			}
			seen[asin] = true
			asins = append(asins, asin)
		}
	}

	for _, asin := range asins {
		prod := &models.Product{
			Title:       "Amazon Product " + asin,
			ASIN:        asin,
			Vendor:      defaultVendor,
			Category:    defaultCategory,
			Status:      "Draft",
			Quantity:    defaultQuantity,
			StockStatus: models.StockUnknown,
		}
		p.gates.Evaluate(prod)
		report.Products = append(report.Products, prod)
	}

	report.UniqueProducts = len(asins)
	report.RemovedRows = report.TotalRows - len(asins)
	if report.RemovedRows < 0 {
		report.RemovedRows = 0
	}
	report.DetectedFeatures = []string{
		"ASIN extraction",
		fmt.Sprintf("%d unique ASINs", len(asins)),
		"Needs enrichment",
	}
}

func (p *Processor) countGates(report *Report) {
	for _, prod := range report.Products {
		switch {
		case prod.GateCount == 5:
			report.Passed++
		case prod.GateCount < 3:
			report.Failed++
		default:
			report.Warned++
		}
	}
}

// Summary renders the one-line log form of a report.
func (r *Report) Summary() string {
	return fmt.Sprintf("%s: %d/%d products (%s)",
		r.Format.Label(), r.UniqueProducts, r.TotalRows,
		strings.Join(r.DetectedFeatures, ", "))
}

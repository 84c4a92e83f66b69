package pipeline

import (
	"math"
	"strings"

	"cmdcenter/internal/models"
)

// DefaultMarkupFactor is the fixed 70% markup applied when deriving a
// sell price from a sourced cost.
const DefaultMarkupFactor = 1.70

const fallbackTitle = "Unknown Product"

// GateEvaluator scores a canonical product against the five
// listing-readiness gates and fills in derived pricing/stock fields.
type GateEvaluator struct {
	markup float64
}

func NewGateEvaluator(markup float64) *GateEvaluator {
	if markup <= 0 {
		markup = DefaultMarkupFactor
	}
	return &GateEvaluator{markup: markup}
}

// Evaluate recomputes gates and gate count in place. Safe to call
// after every mutation of the record: gates are always re-derived,
// pricing is not touched once set.
func (g *GateEvaluator) Evaluate(p *models.Product) {
	g.EnsurePricing(p, false)

	if p.StockStatus == "" {
		p.StockStatus = models.StockUnknown
	}
	// Freshly ingested rows with a price and a title are assumed in
	// stock until real availability data arrives.
	if p.StockStatus == models.StockUnknown && p.Price > 0 && p.Title != "" {
		p.StockStatus = models.StockInStock
	}

	p.Gates = models.Gates{
		Title:       titleGate(p.Title),
		Image:       imageGate(p.Image),
		Price:       priceGate(p.Price, p.ComparePrice),
		ASIN:        asinGate(p.ASIN),
		Description: descriptionGate(p.Description),
	}

	count := 0
	for _, status := range p.Gates.Statuses() {
		if status == models.GatePass {
			count++
		}
	}
	p.GateCount = count
}

// EnsurePricing derives sellPrice/profit/profitPercent from price.
// Computed once: an already-nonzero sellPrice is kept unless force is
// set, so user edits never silently reprice a record.
func (g *GateEvaluator) EnsurePricing(p *models.Product, force bool) {
	if p.Price <= 0 {
		return
	}
	if p.SellPrice != 0 && !force {
		return
	}
	p.SellPrice = round2(p.Price * g.markup)
	p.Profit = round2(p.SellPrice - p.Price)
	p.ProfitPercent = round1(p.Profit / p.Price * 100)
}

func titleGate(title string) models.GateStatus {
	lower := strings.ToLower(title)
	switch {
	case len(title) > 5 && !strings.Contains(title, "<") && lower != "unknown product":
		return models.GatePass
	case title != "" && lower != "unknown product":
		// Present but too short or still carrying markup.
		return models.GateWarn
	default:
		return models.GateFail
	}
}

func imageGate(image string) models.GateStatus {
	if strings.HasPrefix(image, "http") {
		return models.GatePass
	}
	return models.GateFail
}

func priceGate(price, comparePrice float64) models.GateStatus {
	switch {
	case price > 0:
		return models.GatePass
	case comparePrice > 0:
		return models.GateWarn
	default:
		return models.GateFail
	}
}

func asinGate(asin string) models.GateStatus {
	if IsASIN(asin) {
		return models.GatePass
	}
	return models.GateFail
}

func descriptionGate(description string) models.GateStatus {
	switch {
	case len(description) > 30:
		return models.GatePass
	case description != "":
		return models.GateWarn
	default:
		return models.GateFail
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

package generator

import (
	"math"
	"math/rand"
	"time"

	"StockLens/internal/model"
)

// Generator produces synthetic daily bars as a random walk around a base
// price, for development and offline use. The same seed reproduces the same
// sequence.
type Generator struct {
	Symbol     string
	BasePrice  float64
	Volatility float64
	rng        *rand.Rand
}

// New creates a Generator. A non-positive volatility falls back to 2%.
func New(symbol string, basePrice, volatility float64, seed int64) *Generator {
	if volatility <= 0 {
		volatility = 0.02
	}
	return &Generator{
		Symbol:     symbol,
		BasePrice:  basePrice,
		Volatility: volatility,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Generate returns `days` records ending today, chronologically ascending.
// Highs and lows are clamped so every bar satisfies low <= open, close <= high
// even after 2-decimal rounding.
func (g *Generator) Generate(days int) []model.DailyRecord {
	records := make([]model.DailyRecord, 0, days)
	price := g.BasePrice
	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, -(days - i - 1))

		change := price * g.Volatility * (g.rng.Float64()*2 - 1)
		price = round2(price + change)

		open := price
		closePx := round2(price + (g.rng.Float64()*2-1)*price*0.005)
		high := round2(price * (1 + g.rng.Float64()*0.01))
		low := round2(price * (1 - g.rng.Float64()*0.01))
		high = math.Max(high, math.Max(open, closePx))
		low = math.Min(low, math.Min(open, closePx))

		records = append(records, model.DailyRecord{
			Date:   date,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePx,
			Volume: 1_000_000 + g.rng.Int63n(9_000_000),
		})
	}
	return records
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

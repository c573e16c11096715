package collector

import (
	"fmt"
	"time"

	"StockLens/internal/analyzer"
	"StockLens/internal/generator"
	"StockLens/internal/model"
)

// SyntheticFetcher implements Fetcher with generated data, for development
// and offline use. BasePrices maps symbols to their random-walk seed price.
type SyntheticFetcher struct {
	BasePrices map[string]float64
	Volatility float64
	Seed       int64
}

func (s *SyntheticFetcher) Name() string { return "synthetic" }

func (s *SyntheticFetcher) FetchDaily(symbol string, days int) ([]model.DailyRecord, error) {
	base, ok := s.BasePrices[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %q", symbol)
	}
	g := generator.New(symbol, base, s.Volatility, s.Seed)
	return g.Generate(days), nil
}

// Collector fetches a symbol's daily history and derives its analysis
// snapshot.
type Collector struct {
	Fetcher     Fetcher
	ShortWindow int
	LongWindow  int
	RSIPeriod   int
}

// NewCollector creates a Collector; non-positive windows fall back to the
// conventional 5/20-day averages and 14-day RSI.
func NewCollector(fetcher Fetcher, shortWindow, longWindow, rsiPeriod int) *Collector {
	if shortWindow <= 0 {
		shortWindow = 5
	}
	if longWindow <= 0 {
		longWindow = 20
	}
	if rsiPeriod <= 0 {
		rsiPeriod = 14
	}
	return &Collector{
		Fetcher:     fetcher,
		ShortWindow: shortWindow,
		LongWindow:  longWindow,
		RSIPeriod:   rsiPeriod,
	}
}

// Collect fetches `days` of history for the symbol and computes its
// snapshot. The records are returned alongside so callers can chart them
// without a second fetch.
func (c *Collector) Collect(symbol string, days int) (*model.Snapshot, []model.DailyRecord, error) {
	records, err := c.Fetcher.FetchDaily(symbol, days)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch daily records: %w", err)
	}
	return c.Analyze(symbol, records), records, nil
}

// Analyze computes the snapshot for an already-fetched record sequence.
func (c *Collector) Analyze(symbol string, records []model.DailyRecord) *model.Snapshot {
	an := analyzer.New(records)
	change, changePct := an.PriceChange()
	high, low := an.PriceRange()

	return &model.Snapshot{
		Symbol:      symbol,
		LatestPrice: an.LatestPrice(),
		Change:      change,
		ChangePct:   changePct,
		MAShort:     an.MovingAverage(c.ShortWindow).Last(),
		MALong:      an.MovingAverage(c.LongWindow).Last(),
		RSI:         an.RSI(c.RSIPeriod).Last(),
		High:        high,
		Low:         low,
		Trend:       an.Trend(),
		Days:        len(records),
		TakenAt:     time.Now(),
	}
}

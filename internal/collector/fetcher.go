package collector

import "StockLens/internal/model"

// Fetcher defines the interface for acquiring daily market data. The
// analysis core is agnostic to provenance; implementations may be a live
// API client or a synthetic generator.
type Fetcher interface {
	FetchDaily(symbol string, days int) ([]model.DailyRecord, error)
	Name() string
}

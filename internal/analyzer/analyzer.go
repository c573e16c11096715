package analyzer

import (
	"math"

	"StockLens/internal/model"
)

// Analyzer answers read-only indicator queries over an ordered sequence of
// daily records. It keeps no derived state: every query recomputes from the
// input, so repeated calls on the same instance yield identical results.
// Degenerate inputs (empty sequence, insufficient history) map to undefined
// points or zero summaries instead of errors.
type Analyzer struct {
	records []model.DailyRecord
}

// New creates an Analyzer over records. The sequence must be chronologically
// ascending with well-formed bars; that is the caller's responsibility.
func New(records []model.DailyRecord) *Analyzer {
	return &Analyzer{records: records}
}

// Len returns the number of records under analysis.
func (a *Analyzer) Len() int { return len(a.records) }

// MovingAverage computes the simple moving average of the closing price over
// the given window, via a running sum. Positions before the first full
// window are undefined, as is the whole series when window exceeds the
// record count or is not positive.
func (a *Analyzer) MovingAverage(window int) model.IndicatorSeries {
	series := make(model.IndicatorSeries, len(a.records))
	if window <= 0 || len(a.records) < window {
		return series
	}
	sum := 0.0
	for i, r := range a.records {
		sum += r.Close
		if i >= window {
			sum -= a.records[i-window].Close
		}
		if i >= window-1 {
			series[i] = model.IndicatorPoint{Value: round2(sum / float64(window)), Valid: true}
		}
	}
	return series
}

// RSI computes the relative strength index over the given period. Average
// gain and average loss are taken over the most recent `period` daily deltas
// with a fixed divisor of `period` (classic RSI convention; never the count
// of up or down days). A window with no losses yields exactly 100. Positions
// with fewer than period+1 records of history are undefined.
func (a *Analyzer) RSI(period int) model.IndicatorSeries {
	series := make(model.IndicatorSeries, len(a.records))
	if period <= 0 || len(a.records) < period+1 {
		return series
	}

	deltas := make([]float64, len(a.records)-1)
	for i := 1; i < len(a.records); i++ {
		deltas[i-1] = a.records[i].Close - a.records[i-1].Close
	}

	for i := period; i < len(a.records); i++ {
		var gain, loss float64
		for _, d := range deltas[i-period : i] {
			if d > 0 {
				gain += d
			} else {
				loss -= d
			}
		}
		avgGain := gain / float64(period)
		avgLoss := loss / float64(period)

		rsi := 100.0
		if avgLoss != 0 {
			rs := avgGain / avgLoss
			rsi = round2(100 - 100/(1+rs))
		}
		series[i] = model.IndicatorPoint{Value: rsi, Valid: true}
	}
	return series
}

// LatestPrice returns the most recent closing price, or 0 when no records
// exist. Callers must check Len before treating 0 as a real quote.
func (a *Analyzer) LatestPrice() float64 {
	if len(a.records) == 0 {
		return 0
	}
	return a.records[len(a.records)-1].Close
}

// PriceChange returns the absolute and percentage change between the last
// two closes, each rounded to 2 decimals. Returns (0, 0) with fewer than
// 2 records.
func (a *Analyzer) PriceChange() (change, changePct float64) {
	n := len(a.records)
	if n < 2 {
		return 0, 0
	}
	latest := a.records[n-1].Close
	prev := a.records[n-2].Close
	return round2(latest - prev), round2((latest - prev) / prev * 100)
}

// Trend classifies the direction of the last 5 closes by endpoint slope:
// (last-first)/4. This is a deliberately cheap two-point slope, not a
// regression fit. Fewer than 5 records is Indeterminate.
func (a *Analyzer) Trend() model.Trend {
	n := len(a.records)
	if n < 5 {
		return model.TrendIndeterminate
	}
	slope := (a.records[n-1].Close - a.records[n-5].Close) / 4
	switch {
	case slope > 0:
		return model.TrendRising
	case slope < 0:
		return model.TrendFalling
	default:
		return model.TrendFlat
	}
}

// PriceRange returns the highest high and lowest low over the full sequence,
// or (0, 0) when no records exist.
func (a *Analyzer) PriceRange() (high, low float64) {
	if len(a.records) == 0 {
		return 0, 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, r := range a.records {
		if r.High > high {
			high = r.High
		}
		if r.Low < low {
			low = r.Low
		}
	}
	return high, low
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

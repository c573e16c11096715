package model

import "time"

// Snapshot captures one analysis run over a symbol's daily history.
type Snapshot struct {
	Symbol      string
	LatestPrice float64
	Change      float64
	ChangePct   float64
	MAShort     IndicatorPoint
	MALong      IndicatorPoint
	RSI         IndicatorPoint
	High        float64
	Low         float64
	Trend       Trend
	Days        int
	TakenAt     time.Time
}

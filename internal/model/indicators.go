package model

// IndicatorPoint is one position of an indicator series. Valid is false
// while the lookback window is not yet full; the zero value is an
// undefined point. Valid must be checked before comparing Value against
// thresholds, never a numeric sentinel.
type IndicatorPoint struct {
	Value float64
	Valid bool
}

// IndicatorSeries holds one IndicatorPoint per input record, index-aligned.
type IndicatorSeries []IndicatorPoint

// Last returns the most recent point, or an undefined point when the
// series is empty.
func (s IndicatorSeries) Last() IndicatorPoint {
	if len(s) == 0 {
		return IndicatorPoint{}
	}
	return s[len(s)-1]
}

// Trend classifies the short-horizon closing-price direction.
type Trend string

const (
	TrendRising        Trend = "RISING"
	TrendFalling       Trend = "FALLING"
	TrendFlat          Trend = "FLAT"
	TrendIndeterminate Trend = "INDETERMINATE"
)

package model

import "time"

// DailyRecord represents one trading day of OHLCV data. Within a record
// Low <= Open, Close <= High; a sequence of records is chronologically
// ascending with no duplicate dates. Records are immutable once produced.
type DailyRecord struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Closes extracts the closing prices from a record sequence.
func Closes(records []DailyRecord) []float64 {
	closes := make([]float64, len(records))
	for i, r := range records {
		closes[i] = r.Close
	}
	return closes
}

// DateLabels extracts the dates as YYYY-MM-DD labels, aligned to the records.
func DateLabels(records []DailyRecord) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Date.Format("2006-01-02")
	}
	return labels
}

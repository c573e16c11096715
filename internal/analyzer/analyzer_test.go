package analyzer

import (
	"testing"
	"time"

	"StockLens/internal/model"
)

// recordsFromCloses builds a well-formed ascending daily sequence around the
// given closing prices.
func recordsFromCloses(closes []float64) []model.DailyRecord {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]model.DailyRecord, len(closes))
	for i, c := range closes {
		records[i] = model.DailyRecord{
			Date:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1_000_000,
		}
	}
	return records
}

func TestMovingAverage_UptrendWithNoise(t *testing.T) {
	closes := []float64{
		100, 101, 99, 102, 103, 102, 104, 105, 104, 106,
		108, 107, 109, 110, 111, 112, 113, 115, 117, 120,
	}
	a := New(recordsFromCloses(closes))
	ma := a.MovingAverage(5)

	if len(ma) != len(closes) {
		t.Fatalf("expected series length %d, got %d", len(closes), len(ma))
	}
	for i := 0; i < 4; i++ {
		if ma[i].Valid {
			t.Errorf("position %d: expected undefined before first full window", i)
		}
	}
	// mean of closes[0..4] = (100+101+99+102+103)/5
	if !ma[4].Valid || ma[4].Value != 101.00 {
		t.Errorf("position 4: expected 101.00, got %+v", ma[4])
	}
	for i := 4; i < len(ma); i++ {
		if !ma[i].Valid {
			t.Errorf("position %d: expected defined value", i)
		}
	}
	if got := a.Trend(); got != model.TrendRising {
		t.Errorf("expected RISING trend over increasing tail, got %s", got)
	}
}

func TestMovingAverage_WindowLargerThanSeries(t *testing.T) {
	a := New(recordsFromCloses([]float64{100, 101, 102}))
	ma := a.MovingAverage(5)
	if len(ma) != 3 {
		t.Fatalf("expected series length 3, got %d", len(ma))
	}
	for i, p := range ma {
		if p.Valid {
			t.Errorf("position %d: expected undefined when window exceeds data", i)
		}
	}
}

func TestMovingAverage_Rounding(t *testing.T) {
	// (10 + 10.01 + 10.01) / 3 = 10.006666... -> 10.01
	a := New(recordsFromCloses([]float64{10, 10.01, 10.01}))
	ma := a.MovingAverage(3)
	if !ma[2].Valid || ma[2].Value != 10.01 {
		t.Errorf("expected 10.01 after 2-decimal rounding, got %+v", ma[2])
	}
}

func TestRSI_PureUptrendIsExactly100(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	a := New(recordsFromCloses(closes))
	rsi := a.RSI(14)

	for i := 0; i < 14; i++ {
		if rsi[i].Valid {
			t.Errorf("position %d: expected undefined before period+1 records", i)
		}
	}
	for i := 14; i < len(rsi); i++ {
		if !rsi[i].Valid || rsi[i].Value != 100 {
			t.Errorf("position %d: expected RSI exactly 100 with no losses, got %+v", i, rsi[i])
		}
	}
}

func TestRSI_FixedDivisor(t *testing.T) {
	// deltas: +1, -0.5, +1; period 2
	// window {+1, -0.5}: avgGain=0.5, avgLoss=0.25, RS=2, RSI=66.67
	// window {-0.5, +1}: same averages by symmetry
	a := New(recordsFromCloses([]float64{10, 11, 10.5, 11.5}))
	rsi := a.RSI(2)

	if rsi[0].Valid || rsi[1].Valid {
		t.Error("expected first period+1 positions undefined")
	}
	for _, i := range []int{2, 3} {
		if !rsi[i].Valid || rsi[i].Value != 66.67 {
			t.Errorf("position %d: expected RSI 66.67, got %+v", i, rsi[i])
		}
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	a := New(recordsFromCloses([]float64{100, 101, 102}))
	rsi := a.RSI(14)
	if len(rsi) != 3 {
		t.Fatalf("expected series length 3, got %d", len(rsi))
	}
	for i, p := range rsi {
		if p.Valid {
			t.Errorf("position %d: expected undefined with fewer than period+1 records", i)
		}
	}
}

func TestPriceChange(t *testing.T) {
	tests := []struct {
		name      string
		closes    []float64
		change    float64
		changePct float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{100}, 0, 0},
		{"up", []float64{100, 102.5}, 2.5, 2.5},
		{"down", []float64{200, 197}, -3, -1.5},
		{"rounded", []float64{3, 4}, 1, 33.33},
	}
	for _, tt := range tests {
		a := New(recordsFromCloses(tt.closes))
		change, pct := a.PriceChange()
		if change != tt.change || pct != tt.changePct {
			t.Errorf("%s: expected (%.2f, %.2f), got (%.2f, %.2f)",
				tt.name, tt.change, tt.changePct, change, pct)
		}
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		want   model.Trend
	}{
		{"too short", []float64{1, 2, 3, 4}, model.TrendIndeterminate},
		{"empty", nil, model.TrendIndeterminate},
		{"rising", []float64{100, 101, 102, 103, 104}, model.TrendRising},
		{"falling", []float64{104, 103, 102, 101, 100}, model.TrendFalling},
		{"flat endpoints", []float64{100, 150, 90, 120, 100}, model.TrendFlat},
		// the middle 3 of the window never affect the endpoint slope
		{"rising despite dip", []float64{100, 90, 80, 70, 101}, model.TrendRising},
		{"only last 5 counted", []float64{500, 400, 100, 101, 102, 103, 104}, model.TrendRising},
	}
	for _, tt := range tests {
		a := New(recordsFromCloses(tt.closes))
		if got := a.Trend(); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}

func TestPriceRange(t *testing.T) {
	a := New(recordsFromCloses([]float64{100, 105, 95}))
	high, low := a.PriceRange()
	if high != 106 || low != 94 {
		t.Errorf("expected range (106, 94), got (%.2f, %.2f)", high, low)
	}

	empty := New(nil)
	if h, l := empty.PriceRange(); h != 0 || l != 0 {
		t.Errorf("expected (0, 0) on empty sequence, got (%.2f, %.2f)", h, l)
	}
}

func TestEmptySequence(t *testing.T) {
	a := New(nil)
	if p := a.LatestPrice(); p != 0 {
		t.Errorf("expected latest price 0 on empty sequence, got %.2f", p)
	}
	if c, pct := a.PriceChange(); c != 0 || pct != 0 {
		t.Errorf("expected (0, 0) price change, got (%.2f, %.2f)", c, pct)
	}
	if tr := a.Trend(); tr != model.TrendIndeterminate {
		t.Errorf("expected INDETERMINATE trend, got %s", tr)
	}
	if ma := a.MovingAverage(5); len(ma) != 0 {
		t.Errorf("expected empty moving-average series, got length %d", len(ma))
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	closes := []float64{100, 101, 99, 102, 103, 102, 104, 105, 104, 106}
	a := New(recordsFromCloses(closes))

	ma1 := a.MovingAverage(5)
	ma2 := a.MovingAverage(5)
	rsi1 := a.RSI(3)
	rsi2 := a.RSI(3)

	for i := range ma1 {
		if ma1[i] != ma2[i] {
			t.Fatalf("moving average differs between calls at %d: %+v vs %+v", i, ma1[i], ma2[i])
		}
	}
	for i := range rsi1 {
		if rsi1[i] != rsi2[i] {
			t.Fatalf("RSI differs between calls at %d: %+v vs %+v", i, rsi1[i], rsi2[i])
		}
	}
}

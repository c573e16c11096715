package chart

import (
	"math"
	"strings"
)

const (
	// DefaultHeight is the number of grid rows when none is configured.
	DefaultHeight = 15
	// DefaultMaxWidth caps the grid width and the date-axis string length.
	DefaultMaxWidth = 80

	pointGlyph = '•'
)

// Chart is a fixed-resolution character rendering of a closing-price series.
// Rows are ordered top to bottom with the highest-price row first.
type Chart struct {
	Rows     []string
	MaxPrice float64
	MinPrice float64
	DateAxis string
}

// Renderer plots a price series as a character grid: one glyph per display
// column, selected by nearest-neighbor resampling. It is a line-chart
// approximation, not a candlestick or OHLC chart.
type Renderer struct {
	Height   int
	MaxWidth int
}

// NewRenderer creates a Renderer; non-positive dimensions fall back to the
// defaults.
func NewRenderer(height, maxWidth int) *Renderer {
	if height <= 0 {
		height = DefaultHeight
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &Renderer{Height: height, MaxWidth: maxWidth}
}

// Render draws the price series with its aligned date labels. An empty
// series yields a zero-value chart rather than an error.
func (r *Renderer) Render(prices []float64, dates []string) Chart {
	if len(prices) == 0 {
		return Chart{}
	}

	width := r.MaxWidth
	if len(prices) < width {
		width = len(prices)
	}

	minPrice, maxPrice := prices[0], prices[0]
	for _, p := range prices {
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}

	grid := make([][]rune, r.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	for col := 0; col < width; col++ {
		idx := col * len(prices) / width
		grid[r.rowFor(prices[idx], minPrice, maxPrice)][col] = pointGlyph
	}

	// emit top-down: highest price row first
	rows := make([]string, 0, r.Height)
	for i := r.Height - 1; i >= 0; i-- {
		rows = append(rows, string(grid[i]))
	}

	return Chart{
		Rows:     rows,
		MaxPrice: maxPrice,
		MinPrice: minPrice,
		DateAxis: r.dateAxis(dates),
	}
}

// rowFor scales a price linearly into [0, Height-1]. A flat series lands
// every point on the middle row instead of dividing by a zero range.
func (r *Renderer) rowFor(p, minPrice, maxPrice float64) int {
	if maxPrice == minPrice {
		return (r.Height - 1) / 2
	}
	return int(math.Round((p - minPrice) / (maxPrice - minPrice) * float64(r.Height-1)))
}

// dateAxis decimates the labels to roughly six evenly spaced dates and
// truncates the joined string to the configured width.
func (r *Renderer) dateAxis(dates []string) string {
	if len(dates) == 0 {
		return ""
	}
	step := (len(dates) + 4) / 5
	var b strings.Builder
	for i := 0; i < len(dates); i += step {
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(dates[i])
	}
	axis := b.String()
	if len(axis) > r.MaxWidth {
		axis = axis[:r.MaxWidth]
	}
	return axis
}

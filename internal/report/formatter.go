package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"StockLens/internal/chart"
	"StockLens/internal/model"
)

// FormatInfo renders the basic quote summary as a bordered table.
func FormatInfo(name string, snap *model.Snapshot) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s - %s", snap.Symbol, name))
	t.AppendRows([]table.Row{
		{"Latest price", fmt.Sprintf("$%.2f", snap.LatestPrice)},
		{"Change", fmt.Sprintf("$%+.2f (%+.2f%%)", snap.Change, snap.ChangePct)},
		{"Period", fmt.Sprintf("%d days", snap.Days)},
		{"Highest", fmt.Sprintf("$%.2f", snap.High)},
		{"Lowest", fmt.Sprintf("$%.2f", snap.Low)},
		{"Trend", trendLabel(snap.Trend)},
	})
	return t.Render()
}

// FormatChart renders the chart grid with its scale captions and date axis.
func FormatChart(symbol string, c chart.Chart, days int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s price chart (%d days)\n", symbol, days))
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, row := range c.Rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprintf("High: $%.2f\n", c.MaxPrice))
	b.WriteString(fmt.Sprintf("Low:  $%.2f\n", c.MinPrice))
	if c.DateAxis != "" {
		b.WriteString("Dates: " + c.DateAxis + "\n")
	}
	return b.String()
}

// FormatAnalysis renders the technical-analysis view: latest indicator
// values plus a coarse commentary on moving-average alignment and RSI.
func FormatAnalysis(snap *model.Snapshot, shortWindow, longWindow, rsiPeriod int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s technical analysis\n", snap.Symbol))
	b.WriteString(strings.Repeat("-", 40) + "\n")

	b.WriteString(fmt.Sprintf("%d-day moving average: %s\n", shortWindow, dollarLabel(snap.MAShort)))
	b.WriteString(fmt.Sprintf("%d-day moving average: %s\n", longWindow, dollarLabel(snap.MALong)))
	b.WriteString(fmt.Sprintf("RSI (%d-day): %s\n", rsiPeriod, plainLabel(snap.RSI)))

	b.WriteString("\nTrend assessment:\n")
	if snap.MAShort.Valid && snap.MALong.Valid {
		b.WriteString(maCommentary(snap.LatestPrice, snap.MAShort.Value, snap.MALong.Value) + "\n")
	} else {
		b.WriteString("Not enough history for moving-average comparison\n")
	}
	if snap.RSI.Valid {
		b.WriteString(rsiCommentary(snap.RSI.Value) + "\n")
	}
	return b.String()
}

func maCommentary(price, maShort, maLong float64) string {
	switch {
	case price > maShort && maShort > maLong:
		return "Strong uptrend - price above both short and long term averages"
	case price < maShort && maShort < maLong:
		return "Strong downtrend - price below both short and long term averages"
	case price > maShort && maShort < maLong:
		return "Possible rebound - price broke above the short average but remains below the long"
	case price < maShort && maShort > maLong:
		return "Possible pullback - price slipped below the short average but remains above the long"
	default:
		return "Trend unclear"
	}
}

func rsiCommentary(rsi float64) string {
	switch {
	case rsi > 70:
		return "RSI overbought - pullback possible"
	case rsi < 30:
		return "RSI oversold - rebound possible"
	default:
		return "RSI neutral - market balanced"
	}
}

func trendLabel(t model.Trend) string {
	switch t {
	case model.TrendRising:
		return "Rising"
	case model.TrendFalling:
		return "Falling"
	case model.TrendFlat:
		return "Flat"
	default:
		return "Indeterminate"
	}
}

func dollarLabel(p model.IndicatorPoint) string {
	if !p.Valid {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", p.Value)
}

func plainLabel(p model.IndicatorPoint) string {
	if !p.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", p.Value)
}

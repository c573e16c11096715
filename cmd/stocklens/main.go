package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"StockLens/internal/chart"
	"StockLens/internal/collector"
	"StockLens/internal/config"
	"StockLens/internal/model"
	"StockLens/internal/report"
)

type app struct {
	cfg      *config.Config
	symbols  []string
	fetcher  collector.Fetcher
	col      *collector.Collector
	renderer *chart.Renderer
	in       *bufio.Scanner

	current string
	days    int
	records []model.DailyRecord
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fetcher := newFetcher(cfg)
	a := &app{
		cfg:     cfg,
		symbols: cfg.SymbolList(),
		fetcher: fetcher,
		col: collector.NewCollector(fetcher,
			cfg.Analysis.ShortWindow, cfg.Analysis.LongWindow, cfg.Analysis.RSIPeriod),
		renderer: chart.NewRenderer(cfg.Chart.Height, cfg.Chart.MaxWidth),
		in:       bufio.NewScanner(os.Stdin),
		days:     cfg.DataSource.Days,
	}
	a.run()
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	if cfg.DataSource.Provider == "yahoo" {
		return collector.NewYahooFetcher(cfg.Proxy)
	}
	seed := cfg.DataSource.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &collector.SyntheticFetcher{
		BasePrices: cfg.BasePrices(),
		Volatility: 0.02,
		Seed:       seed,
	}
}

func (a *app) run() {
	for {
		a.printMenu()
		switch strings.ToLower(a.prompt("Select an option (1-5, q): ")) {
		case "1":
			a.selectStock()
		case "2":
			a.showInfo()
		case "3":
			a.showChart()
		case "4":
			a.showAnalysis()
		case "5":
			a.changePeriod()
		case "q":
			fmt.Println("Thanks for using StockLens, goodbye!")
			return
		default:
			fmt.Println("Invalid choice, try again.")
		}
	}
}

func (a *app) printMenu() {
	fmt.Println("\n" + strings.Repeat("=", 40))
	fmt.Println("            StockLens")
	fmt.Println(strings.Repeat("=", 40))

	if a.current != "" {
		fmt.Printf("Current stock: %s - %s\n", a.current, a.cfg.Symbols[a.current].Name)
	} else {
		fmt.Println("Current stock: none selected")
	}

	fmt.Println("\n1. Select stock")
	fmt.Println("2. Stock info")
	fmt.Println("3. Price chart")
	fmt.Println("4. Technical analysis")
	fmt.Println("5. Change time period")
	fmt.Println("q. Quit")
}

func (a *app) prompt(msg string) string {
	fmt.Print(msg)
	a.in.Scan()
	return strings.TrimSpace(a.in.Text())
}

func (a *app) selectStock() {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetAutoIndex(true)
	t.AppendHeader(table.Row{"Symbol", "Name"})
	for _, sym := range a.symbols {
		t.AppendRow(table.Row{sym, a.cfg.Symbols[sym].Name})
	}
	fmt.Println(t.Render())

	choice := a.prompt(fmt.Sprintf("Select a stock (1-%d): ", len(a.symbols)))
	idx, err := strconv.Atoi(choice)
	if err != nil {
		fmt.Println("Invalid input, enter a number.")
		return
	}
	if idx < 1 || idx > len(a.symbols) {
		fmt.Println("Invalid choice, try again.")
		return
	}

	a.current = a.symbols[idx-1]
	if a.loadData() {
		fmt.Printf("Selected %s - %s\n", a.current, a.cfg.Symbols[a.current].Name)
	}
}

func (a *app) loadData() bool {
	records, err := a.fetcher.FetchDaily(a.current, a.days)
	if err != nil {
		log.Printf("[ERROR] fetch %s: %v", a.current, err)
		return false
	}
	a.records = records
	return true
}

func (a *app) showInfo() {
	if !a.ensureSelected() {
		return
	}
	snap := a.col.Analyze(a.current, a.records)
	fmt.Println()
	fmt.Println(report.FormatInfo(a.cfg.Symbols[a.current].Name, snap))
}

func (a *app) showChart() {
	if !a.ensureSelected() {
		return
	}
	c := a.renderer.Render(model.Closes(a.records), model.DateLabels(a.records))
	fmt.Println()
	fmt.Print(report.FormatChart(a.current, c, len(a.records)))
}

func (a *app) showAnalysis() {
	if !a.ensureSelected() {
		return
	}
	snap := a.col.Analyze(a.current, a.records)
	fmt.Println()
	fmt.Print(report.FormatAnalysis(snap,
		a.cfg.Analysis.ShortWindow, a.cfg.Analysis.LongWindow, a.cfg.Analysis.RSIPeriod))
}

func (a *app) changePeriod() {
	if a.current == "" {
		fmt.Println("\nSelect a stock first.")
		return
	}
	choice := a.prompt("Enter number of days (7-180): ")
	days, err := strconv.Atoi(choice)
	if err != nil {
		fmt.Println("Invalid input, enter a number.")
		return
	}
	if days < 7 || days > 180 {
		fmt.Println("Out of range, enter a number between 7 and 180.")
		return
	}
	a.days = days
	if a.loadData() {
		fmt.Printf("Time period updated to %d days\n", days)
	}
}

func (a *app) ensureSelected() bool {
	if a.current == "" || len(a.records) == 0 {
		fmt.Println("\nSelect a stock first.")
		return false
	}
	return true
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockLens/internal/collector"
	"StockLens/internal/config"
	"StockLens/internal/recorder"
	"StockLens/internal/tracker"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockLens tracker starting...")

	// Load config
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

	// Init fetcher
	fetcher := newFetcher(cfg)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher,
		cfg.Analysis.ShortWindow, cfg.Analysis.LongWindow, cfg.Analysis.RSIPeriod)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init tracker
	tr := tracker.NewTracker(ctx, col, rec, cfg.SymbolList(), cfg.DataSource.Days)
	if err := tr.Register(cfg.Schedule.SnapshotCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	tr.Start()
	defer tr.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing snapshot task now")
		go tr.RunNow()
	}

	log.Println("[INFO] StockLens tracker is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockLens tracker stopped")
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

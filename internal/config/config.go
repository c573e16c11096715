package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SymbolInfo describes one instrument in the registry: a display name and
// the seed price the synthetic source walks from.
type SymbolInfo struct {
	Name      string  `yaml:"name"`
	BasePrice float64 `yaml:"base_price"`
}

// Config holds all application configuration.
type Config struct {
	Symbols    map[string]SymbolInfo `yaml:"symbols"`
	DataSource struct {
		Provider string `yaml:"provider"` // "synthetic" or "yahoo"
		Days     int    `yaml:"days"`
		Seed     int64  `yaml:"seed"`
	} `yaml:"data_source"`
	Analysis struct {
		ShortWindow int `yaml:"short_window"`
		LongWindow  int `yaml:"long_window"`
		RSIPeriod   int `yaml:"rsi_period"`
	} `yaml:"analysis"`
	Chart struct {
		Height   int `yaml:"height"`
		MaxWidth int `yaml:"max_width"`
	} `yaml:"chart"`
	Schedule struct {
		SnapshotCron string `yaml:"snapshot_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("DATA_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.Days = days
		}
	}
	if v := os.Getenv("SNAPSHOT_CRON"); v != "" {
		cfg.Schedule.SnapshotCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = map[string]SymbolInfo{
			"AAPL":  {Name: "Apple Inc.", BasePrice: 175.0},
			"MSFT":  {Name: "Microsoft Corp.", BasePrice: 340.0},
			"GOOGL": {Name: "Alphabet Inc.", BasePrice: 130.0},
			"AMZN":  {Name: "Amazon.com Inc.", BasePrice: 125.0},
			"TSLA":  {Name: "Tesla Inc.", BasePrice: 240.0},
		}
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "synthetic"
	}
	if cfg.DataSource.Days == 0 {
		cfg.DataSource.Days = 30
	}
	if cfg.Analysis.ShortWindow == 0 {
		cfg.Analysis.ShortWindow = 5
	}
	if cfg.Analysis.LongWindow == 0 {
		cfg.Analysis.LongWindow = 20
	}
	if cfg.Analysis.RSIPeriod == 0 {
		cfg.Analysis.RSIPeriod = 14
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 15
	}
	if cfg.Chart.MaxWidth == 0 {
		cfg.Chart.MaxWidth = 80
	}
	if cfg.Schedule.SnapshotCron == "" {
		cfg.Schedule.SnapshotCron = "0 0 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stocklens.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.DataSource.Provider != "synthetic" && c.DataSource.Provider != "yahoo" {
		return fmt.Errorf("data_source.provider must be \"synthetic\" or \"yahoo\", got %q", c.DataSource.Provider)
	}
	if c.DataSource.Days < 7 || c.DataSource.Days > 180 {
		return fmt.Errorf("data_source.days must be between 7 and 180, got %d", c.DataSource.Days)
	}
	if c.Analysis.ShortWindow <= 0 || c.Analysis.LongWindow <= 0 || c.Analysis.RSIPeriod <= 0 {
		return fmt.Errorf("analysis windows must be positive")
	}
	if c.Chart.Height <= 0 || c.Chart.MaxWidth <= 0 {
		return fmt.Errorf("chart dimensions must be positive")
	}
	for sym, info := range c.Symbols {
		if info.BasePrice <= 0 {
			return fmt.Errorf("symbol %s: base_price must be positive", sym)
		}
	}
	return nil
}

// SymbolList returns the configured symbols in stable sorted order.
func (c *Config) SymbolList() []string {
	symbols := make([]string, 0, len(c.Symbols))
	for sym := range c.Symbols {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

// BasePrices returns the symbol → seed price table for the synthetic source.
func (c *Config) BasePrices() map[string]float64 {
	prices := make(map[string]float64, len(c.Symbols))
	for sym, info := range c.Symbols {
		prices[sym] = info.BasePrice
	}
	return prices
}

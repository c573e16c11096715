package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockLens/internal/collector"
	"StockLens/internal/recorder"
)

// Tracker runs the periodic snapshot task: fetch, analyze, and record every
// configured symbol on a cron schedule.
type Tracker struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Symbols   []string
	Days      int
	Ctx       context.Context
}

// NewTracker creates a new Tracker.
func NewTracker(ctx context.Context, col *collector.Collector, rec recorder.Recorder, symbols []string, days int) *Tracker {
	return &Tracker{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Recorder:  rec,
		Symbols:   symbols,
		Days:      days,
		Ctx:       ctx,
	}
}

// Register schedules the snapshot task.
func (t *Tracker) Register(snapshotCron string) error {
	if _, err := t.Cron.AddFunc(snapshotCron, t.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (t *Tracker) Start() {
	t.Cron.Start()
	log.Println("[INFO] tracker started")
}

// Stop stops the cron scheduler gracefully.
func (t *Tracker) Stop() {
	t.Cron.Stop()
	log.Println("[INFO] tracker stopped")
}

// RunNow executes the snapshot task immediately (manual trigger /
// RUN_ON_START).
func (t *Tracker) RunNow() {
	t.snapshotTask()
}

func (t *Tracker) snapshotTask() {
	log.Println("[INFO] running snapshot task")
	for _, symbol := range t.Symbols {
		select {
		case <-t.Ctx.Done():
			log.Println("[WARN] snapshot task interrupted by shutdown")
			return
		default:
		}

		snap, _, err := t.Collector.Collect(symbol, t.Days)
		if err != nil {
			log.Printf("[ERROR] collect %s: %v", symbol, err)
			continue
		}
		if err := t.Recorder.RecordSnapshot(snap); err != nil {
			log.Printf("[ERROR] record snapshot %s: %v", symbol, err)
			continue
		}
		log.Printf("[INFO] %s: price=%.2f change=%+.2f%% trend=%s",
			symbol, snap.LatestPrice, snap.ChangePct, snap.Trend)
	}
}

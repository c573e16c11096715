package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"StockLens/internal/model"
)

// SQLiteRecorder persists analysis snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the tracker's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			latest_price REAL,
			change       REAL,
			change_pct   REAL,
			ma_short     REAL,
			ma_long      REAL,
			rsi          REAL,
			high         REAL,
			low          REAL,
			trend        TEXT,
			days         INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol ON analysis_snapshots(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSnapshot inserts one analysis snapshot. Undefined indicator points
// are stored as NULL, never as a numeric stand-in.
func (r *SQLiteRecorder) RecordSnapshot(snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, latest_price, change, change_pct,
		 ma_short, ma_long, rsi, high, low, trend, days)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		snap.TakenAt.Unix(), snap.Symbol, snap.LatestPrice, snap.Change, snap.ChangePct,
		nullable(snap.MAShort), nullable(snap.MALong), nullable(snap.RSI),
		snap.High, snap.Low, string(snap.Trend), snap.Days,
	)
	return err
}

func nullable(p model.IndicatorPoint) interface{} {
	if !p.Valid {
		return nil
	}
	return p.Value
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

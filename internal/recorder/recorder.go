package recorder

import "StockLens/internal/model"

// Recorder persists analysis snapshots for later inspection.
type Recorder interface {
	RecordSnapshot(snap *model.Snapshot) error
	Close() error
}

package recorder

import (
	"time"

	"github.com/google/uuid"
)

// MonthEntry records one add-month transaction.
type MonthEntry struct {
	ID          uuid.UUID
	RecordedAt  time.Time
	Year        uint16
	Month       string
	Income      uint32
	Expenses    uint16
	Investments uint32
	Replaced    bool // an existing month of the same name was overwritten
}

// Recorder keeps a journal of month upserts alongside the data file.
type Recorder interface {
	RecordMonth(entry *MonthEntry) error
	// Recent returns at most limit entries, newest first.
	Recent(limit int) ([]MonthEntry, error)
	Close() error
}

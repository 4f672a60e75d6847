package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the month journal to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	version, err := migrateJournal(dbPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Debug("sqlite journal opened", "path", dbPath, "schema", version)
	return &SQLiteRecorder{db: db, now: time.Now}, nil
}

// RecordMonth stores entry, filling in ID and RecordedAt when they are zero.
func (r *SQLiteRecorder) RecordMonth(entry *MonthEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = r.now()
	}

	_, err := r.db.Exec(`INSERT INTO month_entries
		(id, recorded_at, year, month, income, expenses, investments, replaced)
		VALUES (?,?,?,?,?,?,?,?)`,
		entry.ID.String(), entry.RecordedAt.Unix(), entry.Year, entry.Month,
		entry.Income, entry.Expenses, entry.Investments, entry.Replaced,
	)
	if err != nil {
		return fmt.Errorf("insert month entry: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Recent(limit int) ([]MonthEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, recorded_at, year, month, income, expenses, investments, replaced
		FROM month_entries ORDER BY recorded_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query month entries: %w", err)
	}
	defer rows.Close()

	var entries []MonthEntry
	for rows.Next() {
		var (
			e          MonthEntry
			id         string
			recordedAt int64
		)
		if err := rows.Scan(&id, &recordedAt, &e.Year, &e.Month, &e.Income, &e.Expenses, &e.Investments, &e.Replaced); err != nil {
			return nil, fmt.Errorf("scan month entry: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse entry id %q: %w", id, err)
		}
		e.RecordedAt = time.Unix(recordedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Debug("closing sqlite journal")
	return r.db.Close()
}

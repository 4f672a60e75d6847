package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "journal", "fii.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_RecordAndRecent(t *testing.T) {
	r := newTestRecorder(t)
	base := time.Date(2018, time.February, 1, 9, 0, 0, 0, time.UTC)

	first := &MonthEntry{RecordedAt: base, Year: 2018, Month: "jan", Income: 12345, Expenses: 6789, Investments: 1234567}
	second := &MonthEntry{RecordedAt: base.Add(time.Hour), Year: 2018, Month: "jan", Income: 20000, Expenses: 7000, Investments: 1300000, Replaced: true}
	require.NoError(t, r.RecordMonth(first))
	require.NoError(t, r.RecordMonth(second))
	assert.NotEqual(t, uuid.Nil, first.ID, "an id should be assigned")

	entries, err := r.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, second.ID, entries[0].ID, "newest entry first")
	assert.True(t, entries[0].Replaced)
	assert.Equal(t, uint32(20000), entries[0].Income)
	assert.Equal(t, base.Add(time.Hour).Unix(), entries[0].RecordedAt.Unix())
	assert.Equal(t, first.ID, entries[1].ID)
	assert.False(t, entries[1].Replaced)
	assert.Equal(t, uint16(6789), entries[1].Expenses)
}

func TestSQLiteRecorder_RecentLimit(t *testing.T) {
	r := newTestRecorder(t)
	for i, name := range []string{"jan", "feb", "mar"} {
		require.NoError(t, r.RecordMonth(&MonthEntry{
			RecordedAt: time.Unix(int64(1000+i), 0),
			Year:       2018,
			Month:      name,
		}))
	}

	entries, err := r.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "mar", entries[0].Month)
	assert.Equal(t, "feb", entries[1].Month)
}

func TestSQLiteRecorder_ReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fii.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.RecordMonth(&MonthEntry{Year: 2019, Month: "apr"}))
	require.NoError(t, r.Close())

	r, err = NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()

	entries, err := r.Recent(5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "apr", entries[0].Month)
}

func TestMigrateJournal_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fii.db")

	version, err := migrateJournal(path)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	version, err = migrateJournal(path)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()

	var stored int
	require.NoError(t, r.db.QueryRow("SELECT version FROM "+schemaTable).Scan(&stored))
	assert.Equal(t, 1, stored)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordMonth(&MonthEntry{}))
	entries, err := r.Recent(10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, r.Close())
}

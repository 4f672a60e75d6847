// Package tracker implements the read-modify-write cycle over the data file.
package tracker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"fii/internal/codec"
	"fii/internal/model"
	"fii/internal/recorder"
)

// ErrNotFound matches every lookup failure.
var ErrNotFound = errors.New("not found")

var (
	// ErrNoSuchYear is returned when the history has no year with the requested id.
	ErrNoSuchYear error = notFoundError("no such year")
	// ErrNoSuchMonth is returned when the year has no month with the requested name.
	ErrNoSuchMonth error = notFoundError("no such month")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

func (e notFoundError) Is(target error) bool { return target == ErrNotFound }

// Storage holds the raw text of the history.
type Storage interface {
	Load() (string, error)
	Save(text string) error
}

// Manager applies month upserts and lookups to the persisted history.
// Every call reloads the file; nothing is cached between calls.
type Manager struct {
	store    Storage
	recorder recorder.Recorder
	now      func() time.Time
}

// NewManager creates a Manager. now supplies the current year for a fresh history.
func NewManager(store Storage, rec recorder.Recorder, now func() time.Time) *Manager {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if now == nil {
		now = time.Now
	}
	return &Manager{store: store, recorder: rec, now: now}
}

// Load reads and decodes the history. An empty file yields a fresh history
// holding one empty Year for the current calendar year.
func (m *Manager) Load() (*model.History, error) {
	h, err := m.read()
	if err != nil {
		return nil, err
	}
	if h == nil {
		return startNew(model.NewYear(uint16(m.now().Year()))), nil
	}
	return h, nil
}

// read returns the persisted history, or nil when the file is empty.
func (m *Manager) read() (*model.History, error) {
	text, err := m.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return codec.Decode[model.History](text)
}

// AddMonth upserts month into year yearID and writes the history back.
// A month with the same name is replaced in place; otherwise month is appended.
// The touched year moves to the end of the history. replaced reports whether
// an existing month was overwritten. On an empty file the history starts with
// yearID as its only year.
func (m *Manager) AddMonth(yearID uint16, month model.Month) (replaced bool, err error) {
	h, err := m.read()
	if err != nil {
		return false, err
	}
	if h == nil {
		h = startNew(model.NewYear(yearID))
	}

	year := takeYear(h, yearID)
	replaced = upsertMonth(year, month)
	h.AddYear(year)

	text, err := codec.Encode(h)
	if err != nil {
		return false, err
	}
	if err := m.store.Save(text); err != nil {
		return false, fmt.Errorf("save history: %w", err)
	}
	log.Info("month saved", "year", yearID, "month", month.Name, "replaced", replaced)

	if err := m.recorder.RecordMonth(&recorder.MonthEntry{
		RecordedAt:  m.now(),
		Year:        yearID,
		Month:       month.Name,
		Income:      month.Income,
		Expenses:    month.Expenses,
		Investments: month.Investments,
		Replaced:    replaced,
	}); err != nil {
		log.Warn("record month entry failed", "err", err)
	}
	return replaced, nil
}

// ShowYear returns the year with id yearID. An empty file holds no years.
func (m *Manager) ShowYear(yearID uint16) (*model.Year, error) {
	h, err := m.read()
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchYear, yearID)
	}
	year := findYear(h, yearID)
	if year == nil {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchYear, yearID)
	}
	return year, nil
}

// ShowMonth returns the month called name within year yearID.
func (m *Manager) ShowMonth(yearID uint16, name string) (model.Month, error) {
	year, err := m.ShowYear(yearID)
	if err != nil {
		return model.Month{}, err
	}
	i := monthIndex(year, name)
	if i < 0 {
		return model.Month{}, fmt.Errorf("%w: %s %d", ErrNoSuchMonth, name, yearID)
	}
	return year.Months[i], nil
}

func startNew(y *model.Year) *model.History {
	h := model.NewHistory()
	h.AddYear(y)
	return h
}

// takeYear removes and returns the year with id from h, or a new empty year.
func takeYear(h *model.History, id uint16) *model.Year {
	i := slices.IndexFunc(h.Years, func(y *model.Year) bool { return y.ID == id })
	if i < 0 {
		return model.NewYear(id)
	}
	year := h.Years[i]
	h.Years = slices.Delete(h.Years, i, i+1)
	return year
}

func findYear(h *model.History, id uint16) *model.Year {
	for _, y := range h.Years {
		if y.ID == id {
			return y
		}
	}
	return nil
}

func monthIndex(y *model.Year, name string) int {
	return slices.IndexFunc(y.Months, func(m model.Month) bool { return m.Name == name })
}

func upsertMonth(y *model.Year, month model.Month) bool {
	if i := monthIndex(y, month.Name); i >= 0 {
		y.Months[i] = month
		return true
	}
	y.AddMonth(month)
	return false
}

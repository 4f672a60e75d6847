// Package reminder works out when the next monthly snapshot should be recorded.
package reminder

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSpec is 09:00 on the first day of every month.
const DefaultSpec = "0 9 1 * *"

// Reminder wraps a parsed cron schedule.
type Reminder struct {
	Spec     string
	schedule cron.Schedule
}

// New parses a standard five-field cron expression or a descriptor such as "@monthly".
func New(spec string) (*Reminder, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse reminder schedule %q: %w", spec, err)
	}
	return &Reminder{Spec: spec, schedule: schedule}, nil
}

// Next returns the first due time strictly after from.
func (r *Reminder) Next(from time.Time) time.Time {
	return r.schedule.Next(from)
}

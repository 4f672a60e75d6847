// Package cli dispatches command-line arguments to the tracker.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"fii/internal/formatter"
	"fii/internal/model"
	"fii/internal/recorder"
	"fii/internal/reminder"
	"fii/internal/tracker"
)

// Command names accepted as the first argument.
const (
	AddMonth  = "add-month"
	ShowMonth = "show-month"
	ShowYear  = "show-year"
	Journal   = "journal"
	NextDue   = "next-due"
	Help      = "help"
)

const defaultJournalLimit = 20

// Usage is printed when no command, or an unknown one, is given.
const Usage = `fii - track your FI progress

usage:
  fii [-config path] <command> [arguments]

commands:
  add-month <year> <month> <income> <expenses> <investments>
                          record or replace a month's figures
  show-month <year> <month>
                          show a month's figures and investment income
  show-year <year>        show every month of a year with totals
  journal [limit]         list recent add-month entries, newest first
  next-due                show when the next monthly snapshot is due
  help                    show this message
`

// ErrUsage means no action was taken because the arguments were wrong.
var ErrUsage = errors.New("usage")

// App wires commands to their collaborators.
type App struct {
	Manager  *tracker.Manager
	Journal  recorder.Recorder
	Reminder *reminder.Reminder
	Percent  uint8
	Out      io.Writer
	Now      func() time.Time
}

// Run executes the command named by args[0].
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.Out, Usage)
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case AddMonth:
		return a.addMonth(rest)
	case ShowMonth:
		return a.showMonth(rest)
	case ShowYear:
		return a.showYear(rest)
	case Journal:
		return a.journal(rest)
	case NextDue:
		return a.nextDue(rest)
	case Help, "-h", "--help":
		fmt.Fprint(a.Out, Usage)
		return nil
	default:
		fmt.Fprint(a.Out, Usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (a *App) addMonth(args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("%w: %s takes <year> <month> <income> <expenses> <investments>", ErrUsage, AddMonth)
	}
	year, err := parseUint("year", args[0], 16)
	if err != nil {
		return err
	}
	income, err := parseUint("income", args[2], 32)
	if err != nil {
		return err
	}
	expenses, err := parseUint("expenses", args[3], 16)
	if err != nil {
		return err
	}
	investments, err := parseUint("investments", args[4], 32)
	if err != nil {
		return err
	}

	month := model.NewMonth(args[1], uint32(income), uint16(expenses), uint32(investments))
	_, err = a.Manager.AddMonth(uint16(year), month)
	return err
}

func (a *App) showMonth(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s takes <year> <month>", ErrUsage, ShowMonth)
	}
	year, err := parseUint("year", args[0], 16)
	if err != nil {
		return err
	}
	m, err := a.Manager.ShowMonth(uint16(year), args[1])
	if err != nil {
		return err
	}
	fmt.Fprint(a.Out, formatter.FormatMonth(m, a.Percent))
	return nil
}

func (a *App) showYear(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s takes <year>", ErrUsage, ShowYear)
	}
	year, err := parseUint("year", args[0], 16)
	if err != nil {
		return err
	}
	y, err := a.Manager.ShowYear(uint16(year))
	if err != nil {
		return err
	}
	fmt.Fprint(a.Out, formatter.FormatYear(y, a.Percent))
	return nil
}

func (a *App) journal(args []string) error {
	limit := defaultJournalLimit
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: invalid limit %q", ErrUsage, args[0])
		}
		limit = n
	default:
		return fmt.Errorf("%w: %s takes at most one argument", ErrUsage, Journal)
	}
	entries, err := a.Journal.Recent(limit)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	fmt.Fprint(a.Out, formatter.FormatJournal(entries))
	return nil
}

func (a *App) nextDue(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: %s takes no arguments", ErrUsage, NextDue)
	}
	fmt.Fprint(a.Out, formatter.FormatNextDue(a.Reminder.Next(a.Now())))
	return nil
}

func parseUint(field, s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q: must be an integer between 0 and %d", ErrUsage, field, s, uint64(1)<<bits-1)
	}
	return v, nil
}

// Exit codes returned by ExitCode.
const (
	ExitOK       = 0
	ExitFatal    = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// ExitCode maps a Run error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, tracker.ErrNotFound):
		return ExitNotFound
	default:
		return ExitFatal
	}
}

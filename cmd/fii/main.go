package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"fii/internal/cli"
	"fii/internal/config"
	"fii/internal/recorder"
	"fii/internal/reminder"
	"fii/internal/store"
	"fii/internal/tracker"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "fii", Level: log.WarnLevel})
	log.SetDefault(logger)

	// .env is optional
	_ = godotenv.Load()

	flags := flag.NewFlagSet("fii", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	cfgPath := flags.String("config", config.DefaultPath(), "path to the YAML config file")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Print(cli.Usage)
			return cli.ExitOK
		}
		return cli.ExitUsage
	}

	// Load config
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Error("load config", "err", err)
		return cli.ExitFatal
	}
	if err := cfg.Validate(); err != nil {
		log.Error("config validation", "err", err)
		return cli.ExitFatal
	}
	level, _ := log.ParseLevel(cfg.Log.Level)
	logger.SetLevel(level)
	log.Debug("config loaded", "path", *cfgPath, "data", cfg.Data.File)

	// Init journal
	var journal recorder.Recorder
	if cfg.Journal.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Journal.SQLitePath)
		if err != nil {
			log.Warn("init sqlite journal failed, using noop", "err", err)
			journal = recorder.NewNoopRecorder()
		} else {
			journal = sr
		}
	} else {
		journal = recorder.NewNoopRecorder()
	}
	defer journal.Close()

	rem, err := reminder.New(cfg.Reminder.Cron)
	if err != nil {
		log.Error("init reminder", "err", err)
		return cli.ExitFatal
	}

	app := &cli.App{
		Manager:  tracker.NewManager(store.New(cfg.Data.File, cfg.Data.AtomicSave), journal, time.Now),
		Journal:  journal,
		Reminder: rem,
		Percent:  cfg.Withdrawal.Percent,
		Out:      os.Stdout,
		Now:      time.Now,
	}

	err = app.Run(flags.Args())
	code := cli.ExitCode(err)
	switch code {
	case cli.ExitOK:
	case cli.ExitUsage:
		if len(flags.Args()) > 0 {
			log.Error(err)
		}
	case cli.ExitNotFound:
		log.Error("lookup failed", "err", err)
	default:
		log.Error("fatal", "err", err)
	}
	return code
}

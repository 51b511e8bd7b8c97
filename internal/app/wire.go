package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"ftracker/internal/domain"
	"ftracker/internal/observability"
	"ftracker/internal/services/reader"
	"ftracker/internal/services/tracker"
	"ftracker/internal/store"
)

// Wire bundles the services and collectors for the CLI.
type Wire struct {
	Config  Config
	Logger  zerolog.Logger
	Reader  domain.TrainingReader
	Tracker *tracker.Service
	Metrics *observability.Metrics
}

// NewWire constructs the dependency graph from cfg. Diagnostics go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	logger, err := NewLogger(cfg.LogLevel, logOut)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	policy := tracker.FailFast
	if cfg.ContinueOnError {
		policy = tracker.ContinueOnError
	}

	readerSvc := reader.New()
	metrics := observability.NewMetrics()
	trackerSvc := tracker.New(readerSvc,
		tracker.WithLogger(logger),
		tracker.WithMetrics(metrics),
		tracker.WithPolicy(policy),
	)

	return &Wire{
		Config:  cfg,
		Logger:  logger,
		Reader:  readerSvc,
		Tracker: trackerSvc,
		Metrics: metrics,
	}, nil
}

// LoadPackages returns the packages named by the config, or the reference
// packages when no file is set.
func (w *Wire) LoadPackages() ([]domain.Package, error) {
	if w.Config.PackagesFile == "" {
		return store.ReferencePackages(), nil
	}
	packages, err := store.NewPackageFileStore(w.Config.PackagesFile).LoadPackages()
	if err != nil {
		return nil, err
	}
	w.Logger.Debug().Str("file", w.Config.PackagesFile).Int("packages", len(packages)).Msg("packages loaded")
	return packages, nil
}

// FlushMetrics writes metrics to the configured textfile, if any.
func (w *Wire) FlushMetrics() error {
	if w.Config.MetricsTextfile == "" {
		return nil
	}
	if err := w.Metrics.WriteTextfile(w.Config.MetricsTextfile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

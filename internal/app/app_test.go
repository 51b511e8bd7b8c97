package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftracker/internal/app"
	"ftracker/internal/store"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FTRACKER_LOG_LEVEL",
		"FTRACKER_PACKAGES_FILE",
		"FTRACKER_CONTINUE_ON_ERROR",
		"FTRACKER_METRICS_TEXTFILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, app.Config{LogLevel: "warn"}, cfg)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("FTRACKER_LOG_LEVEL", "debug")
	t.Setenv("FTRACKER_PACKAGES_FILE", "/tmp/packages.json")
	t.Setenv("FTRACKER_CONTINUE_ON_ERROR", "true")
	t.Setenv("FTRACKER_METRICS_TEXTFILE", "/tmp/ftracker.prom")

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, app.Config{
		LogLevel:        "debug",
		PackagesFile:    "/tmp/packages.json",
		ContinueOnError: true,
		MetricsTextfile: "/tmp/ftracker.prom",
	}, cfg)
}

func TestLoadConfig_BadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("FTRACKER_CONTINUE_ON_ERROR", "sometimes")

	_, err := app.LoadConfig("")
	assert.ErrorContains(t, err, "FTRACKER_CONTINUE_ON_ERROR")
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("FTRACKER_PACKAGES_FILE")

	path := filepath.Join(t.TempDir(), "ftracker.env")
	require.NoError(t, os.WriteFile(path, []byte("FTRACKER_PACKAGES_FILE=from-file.json\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FTRACKER_PACKAGES_FILE") })

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file.json", cfg.PackagesFile)
}

func TestLoadConfig_MissingExplicitEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewWire_RejectsBadLogLevel(t *testing.T) {
	_, err := app.NewWire(app.Config{LogLevel: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestWire_RunsReferencePackages(t *testing.T) {
	var logs bytes.Buffer
	metricsPath := filepath.Join(t.TempDir(), "ftracker.prom")
	w, err := app.NewWire(app.Config{LogLevel: "info", MetricsTextfile: metricsPath}, &logs)
	require.NoError(t, err)

	packages, err := w.LoadPackages()
	require.NoError(t, err)
	assert.Equal(t, store.ReferencePackages(), packages)

	var out bytes.Buffer
	report, err := w.Tracker.Run(&out, packages)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Processed)
	assert.Contains(t, logs.String(), "run finished")

	require.NoError(t, w.FlushMetrics())
	b, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "ftracker_tracker_workouts_processed_total")
}

func TestWire_ContinueOnErrorPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"code": "XYZ", "values": [1]},
		{"code": "RUN", "values": [15000, 1, 75]}
	]`), 0o600))

	w, err := app.NewWire(app.Config{LogLevel: "error", PackagesFile: path, ContinueOnError: true}, &bytes.Buffer{})
	require.NoError(t, err)

	packages, err := w.LoadPackages()
	require.NoError(t, err)

	var out bytes.Buffer
	report, err := w.Tracker.Run(&out, packages)
	require.Error(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, out.String(), "Running")
}

func TestFlushMetrics_DisabledWithoutPath(t *testing.T) {
	w, err := app.NewWire(app.Config{LogLevel: "warn"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(t, w.FlushMetrics())
}

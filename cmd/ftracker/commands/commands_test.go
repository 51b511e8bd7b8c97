package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftracker/internal/domain"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{
		"FTRACKER_LOG_LEVEL",
		"FTRACKER_PACKAGES_FILE",
		"FTRACKER_CONTINUE_ON_ERROR",
		"FTRACKER_METRICS_TEXTFILE",
	} {
		t.Setenv(key, "")
	}

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_ReferencePackages(t *testing.T) {
	out, _, err := execute(t, "run")
	require.NoError(t, err)

	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n"+
			"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.\n"+
			"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.\n",
		out)
}

func TestRun_FileWithFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packages.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"code": "RUN", "values": [15000, 1, 75]},
		{"code": "XYZ", "values": [1, 2, 3]},
		{"code": "WLK", "values": [9000, 1, 75, 180]}
	]`), 0o600))

	out, _, err := execute(t, "run", "--file", path)
	require.ErrorIs(t, err, domain.ErrUnknownWorkoutKind)
	assert.Equal(t, 1, strings.Count(out, "\n"))

	metricsPath := filepath.Join(dir, "ftracker.prom")
	out, _, err = execute(t, "run", "-f", path, "--continue-on-error", "--metrics-textfile", metricsPath)
	require.ErrorIs(t, err, domain.ErrUnknownWorkoutKind)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "SportsWalking")

	b, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `ftracker_tracker_packages_failed_total{code="XYZ",reason="unknown_kind"} 1`)
}

func TestCalc(t *testing.T) {
	out, _, err := execute(t, "calc", "SWM", "720", "1", "80", "25", "40")
	require.NoError(t, err)
	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n",
		out)

	_, _, err = execute(t, "calc", "RUN", "1", "2")
	assert.ErrorIs(t, err, domain.ErrArityMismatch)

	_, _, err = execute(t, "calc", "RUN", "1", "two", "3")
	assert.ErrorContains(t, err, `value 2 "two"`)

	for _, v := range []string{"NaN", "Inf", "-Inf"} {
		out, _, err = execute(t, "calc", "RUN", "15000", v, "75")
		assert.ErrorIs(t, err, domain.ErrInvalidMeasurement, v)
		assert.Empty(t, out, v)
	}
}

func TestFingerprint(t *testing.T) {
	out, _, err := execute(t, "fingerprint", "RUN", "15000", "1", "75")
	require.NoError(t, err)
	assert.Regexp(t, `^Fingerprint: [0-9a-f]{20}\n$`, out)

	again, _, err := execute(t, "fingerprint", "RUN", "15000", "1.0", "75")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestLogLevelFlag(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "info", "run")
	require.NoError(t, err)
	assert.Contains(t, stderr, "run finished")

	_, _, err = execute(t, "--log-level", "shouting", "run")
	assert.Error(t, err)
}

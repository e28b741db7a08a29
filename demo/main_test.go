package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goberkowitz/internal/config"
	"github.com/sartorproj/goberkowitz/timeseries"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRunSynthetic(t *testing.T) {
	cfg := config.New()
	cfg.Observations = 300
	cfg.TrainSize = 200

	var buf bytes.Buffer
	require.NoError(t, run(cfg, testLogger(&buf)))

	out := buf.String()
	assert.Contains(t, out, "msg=\"berkowitz backtest\"")
	assert.Contains(t, out, "n=100")
	assert.Contains(t, out, "deviate autocorrelation")
	assert.Contains(t, out, "significant_lags=")
	assert.Contains(t, out, "evaluation=100")
	assert.Contains(t, out, " min=")
}

func TestRunWritesDeviates(t *testing.T) {
	cfg := config.New()
	cfg.Observations = 150
	cfg.TrainSize = 100
	cfg.OutputCSV = filepath.Join(t.TempDir(), "deviates.csv")

	var buf bytes.Buffer
	require.NoError(t, run(cfg, testLogger(&buf)))
	assert.Contains(t, buf.String(), "deviates written")

	deviates, err := timeseries.LoadCSVColumn(cfg.OutputCSV, "y")
	require.NoError(t, err)
	assert.Equal(t, 50, deviates.Len())
	assert.NoError(t, deviates.Validate())
}

func TestRunFromCSV(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("ds,ret\n")
	for i := 0; i < 60; i++ {
		// deterministic, irregular values
		v := float64((i*37)%23) - 11 + float64(i%5)/7
		sb.WriteString("2024-01-01," + strconv.FormatFloat(v, 'f', -1, 64) + "\n")
	}
	path := filepath.Join(t.TempDir(), "returns.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	cfg := config.New()
	cfg.InputCSV = path
	cfg.ValueColumn = "ret"
	cfg.TrainSize = 40
	cfg.LjungBoxLags = 0

	var buf bytes.Buffer
	require.NoError(t, run(cfg, testLogger(&buf)))
	assert.Contains(t, buf.String(), "n=20")
	assert.NotContains(t, buf.String(), "deviate autocorrelation")
}

func TestRunEmpiricalBoundary(t *testing.T) {
	cfg := config.New()
	cfg.Observations = 120
	cfg.TrainSize = 20
	cfg.Forecaster = config.ForecasterEmpirical

	// Some observations fall outside their trailing window, giving a PIT of
	// exactly 0 or 1 and an infinite deviate.
	var buf bytes.Buffer
	err := run(cfg, testLogger(&buf))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "berkowitz test")
}

func TestRunErrors(t *testing.T) {
	cfg := config.New()
	cfg.InputCSV = filepath.Join(t.TempDir(), "missing.csv")

	var buf bytes.Buffer
	assert.Error(t, run(cfg, testLogger(&buf)))
}

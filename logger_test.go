package ldclump

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithChromosome(ChromosomeX).LogWindows(context.Background(), 10, 250000, 3)
	assert.Contains(t, buf.String(), "chromosome=X")
	assert.Contains(t, buf.String(), "max_window=3")

	buf.Reset()
	l.LogClump(context.Background(), 2, 5, nil)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "clumped=5")

	buf.Reset()
	l.LogClump(context.Background(), 0, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestClumperLogsIndexVariants(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, c := newFixtureClumper(t, fixturePs(1), WithLogger(l))
	clumps, err := c.Run(context.Background(), ClumpParams{DistanceBP: 5000, R2Threshold: 0.1, PThreshold: 1})
	assert.NoError(t, err)

	out := buf.String()
	assert.Equal(t, len(clumps), strings.Count(out, `msg="retained index variant"`))
	assert.Contains(t, out, "chromosome=1")
	assert.Contains(t, out, "chromosome=2")
	assert.Contains(t, out, `msg="clumping completed"`)
}

func TestNoopLoggerSkipsIndexLogging(t *testing.T) {
	v := NewVariant("rs1", 1, 100, "A", "G")
	assert.NotPanics(t, func() { NoopLogger().LogIndex(context.Background(), &v, 3) })
}

func TestWithLoggerNil(t *testing.T) {
	o := applyOptions([]Option{WithLogger(nil), WithWorkers(0)})
	assert.NotNil(t, o.logger)
	assert.Equal(t, 1, o.workers)
	assert.False(t, o.logger.Enabled(context.Background(), slog.LevelError))
}

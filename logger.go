package ldclump

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ldclump-specific helpers. Components take a
// Logger at construction; none of them require one.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text at Info to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithChromosome adds a chromosome field to the logger.
func (l *Logger) WithChromosome(chr int) *Logger {
	return &Logger{
		Logger: l.Logger.With("chromosome", ChromosomeName(chr)),
	}
}

// LogRank logs a significance ranking pass.
func (l *Logger) LogRank(ctx context.Context, variants, unknownP int) {
	l.DebugContext(ctx, "ranked variants by p",
		"variants", variants,
		"unknown_p", unknownP,
	)
}

// LogWindows logs a clump window build.
func (l *Logger) LogWindows(ctx context.Context, variants int, distance int64, maxWindow int) {
	l.DebugContext(ctx, "built clump windows",
		"variants", variants,
		"distance", distance,
		"max_window", maxWindow,
	)
}

// LogIndex logs one retained index variant and the size of its clump.
func (l *Logger) LogIndex(ctx context.Context, v *Variant, members int) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.WithChromosome(v.Chromosome).DebugContext(ctx, "retained index variant",
		"variant", v.Name,
		"position", v.Position,
		"p", v.P,
		"members", members,
	)
}

// LogClump logs the outcome of a clumping run.
func (l *Logger) LogClump(ctx context.Context, clumps, clumped int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clumping failed",
			"clumps", clumps,
			"clumped", clumped,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clumping completed",
			"clumps", clumps,
			"clumped", clumped,
		)
	}
}

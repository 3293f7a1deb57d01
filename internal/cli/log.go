// Package cli implements the graphkit command-line interface.
//
// Every command reads one input file (or stdin when the path is "-"), runs a
// single algorithm and prints a short styled report. Input format, direction
// and algorithm knobs come from flags, optionally backed by a TOML file
// passed with --config; explicit flags win over file values.
//
// # Commands
//
//   - toposort: order a DAG (Kahn, or reverse postorder with --strategy dfs)
//   - scc:      strongly connected components, largest first
//   - dijkstra: shortest distances from --source
//   - mst:      minimum spanning tree cost (Prim or Kruskal)
//   - cluster:  max-spacing k-clustering
//   - hamming:  clusters of bit labels within --distance flips
//   - generate: write a synthetic edge list
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context and used for timing via progress.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one pipeline step (load, or the algorithm a command runs).
// Its log lines carry the step as a structured key so runs can be grepped
// or parsed by step.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger, step string) *progress {
	return &progress{logger: l.With("step", step), start: time.Now()}
}

// done logs msg at info level with the result keyvals and the elapsed time,
// e.g. `INFO finished step=kosaraju components=3 elapsed=1ms`.
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// Package cli implements the dash command-line interface.
//
// This package provides commands for creating, validating, inspecting and
// editing Dash documents, rendering them as graphs, and serving them over
// HTTP. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - new, validate, fmt: Create, check and normalize documents
//   - tree, inspect, graph: Show the view tree as an outline, attributes or a graph
//   - set, select, fill: Edit attributes and fill placeholders
//   - watch: Revalidate a document whenever it changes on disk
//   - serve: Expose a document store over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Document
// loads and store operations are reported through pkg/observability hooks
// backed by the CLI logger.
//
// # Example
//
//	import "github.com/dashdoc/dash/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Validated 12 documents (41ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports document and store activity at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnLoad(_ context.Context, size, nodes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("document load failed", "bytes", size, "duration", d, "err", err)
		return
	}
	h.logger.Debug("document loaded", "bytes", size, "nodes", nodes, "duration", d)
}

func (h *logHooks) OnSave(_ context.Context, size, nodes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("document save failed", "nodes", nodes, "err", err)
		return
	}
	h.logger.Debug("document saved", "bytes", size, "nodes", nodes, "duration", d)
}

func (h *logHooks) OnGet(_ context.Context, backend, name string, found bool, d time.Duration) {
	h.logger.Debug("store get", "backend", backend, "name", name, "found", found, "duration", d)
}

func (h *logHooks) OnPut(_ context.Context, backend, name string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("store put failed", "backend", backend, "name", name, "err", err)
		return
	}
	h.logger.Debug("store put", "backend", backend, "name", name, "bytes", size, "duration", d)
}

func (h *logHooks) OnDelete(_ context.Context, backend, name string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("store delete failed", "backend", backend, "name", name, "err", err)
		return
	}
	h.logger.Debug("store delete", "backend", backend, "name", name, "duration", d)
}

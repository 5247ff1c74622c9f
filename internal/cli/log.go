// Package cli implements the metroroute command-line interface.
//
// Commands load a network (the built-in Delhi Metro data unless --network
// names a file), wrap it in a planner, and either answer queries or present
// the network. The CLI is built on cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - plan: interactive route planning loop (optionally with a TUI picker)
//   - route: one-shot query, text or JSON
//   - lines, stations: network listings
//   - map: Graphviz network map with an optional highlighted route
//   - serve: JSON HTTP API
//   - export: write the loaded network as TOML, YAML or JSON
//   - cache: manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// routes planner, cache and HTTP events to the log. Loggers are passed
// through context.Context.
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

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time at info level,
// e.g. "Rendered map (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

// debug is done at debug level.
func (p *progress) debug(msg string) {
	p.logger.Debugf("%s (%s)", msg, p.elapsed())
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks writes observability events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnQueryStart(_ context.Context, from, to string) {
	h.logger.Debug("query", "from", from, "to", to)
}

func (h *logHooks) OnQueryComplete(_ context.Context, from, to string, stations int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("query failed", "from", from, "to", to, "err", err, "elapsed", d)
		return
	}
	h.logger.Debug("query done", "from", from, "to", to, "stations", stations, "elapsed", d)
}

func (h *logHooks) OnNetworkLoad(_ context.Context, name string, stations, connections int, d time.Duration) {
	h.logger.Debug("network loaded", "name", name, "stations", stations, "connections", connections, "elapsed", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, id, method, path string) {
	h.logger.Debug("http request", "id", id, "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, id, method, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "id", id, "method", method, "path", path, "status", status, "elapsed", d)
}

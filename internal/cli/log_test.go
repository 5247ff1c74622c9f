package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at error level", log.ErrorLevel, func(l *log.Logger) { l.Warn("test") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	prog.debug("hidden")
	if buf.Len() != 0 {
		t.Error("progress.debug should be filtered at info level")
	}

	prog.done("Network ready")
	out := buf.String()
	if !strings.Contains(out, "Network ready (") || !strings.Contains(out, "s)") {
		t.Errorf("progress.done output = %q, want message with elapsed time", out)
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnNetworkLoad(ctx, "Delhi Metro", 24, 22, time.Millisecond)
	h.OnQueryStart(ctx, "Majlis Park", "Dwarka")
	h.OnQueryComplete(ctx, "Majlis Park", "Dwarka", 15, time.Millisecond, nil)
	h.OnQueryComplete(ctx, "Majlis Park", "tilak nagar", 0, time.Millisecond, errors.New("no route"))
	h.OnCacheMiss(ctx, "map")
	h.OnRequest(ctx, "id-1", "GET", "/route")
	h.OnResponse(ctx, "id-1", "GET", "/route", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"network loaded", "query done", "query failed", "cache miss", "http response", "id-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

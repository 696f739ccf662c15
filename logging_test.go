package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked through warn filter: %s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "level=warn") {
		t.Fatalf("expected warn line, got: %s", out)
	}
}

func TestNewLoggerReportsCallSite(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info")

	level.Info(logger).Log("msg", "where")

	if out := buf.String(); !strings.Contains(out, "caller=logging_test.go:") {
		t.Fatalf("expected caller to point at this file, got: %s", out)
	}
}

func TestLevelOption(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "", "warn", "warning", "error"} {
		if _, ok := levelOption(name); !ok {
			t.Fatalf("expected %q to be accepted", name)
		}
	}
	if _, ok := levelOption("trace"); ok {
		t.Fatalf("expected trace to be rejected")
	}
}

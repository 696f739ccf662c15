package main

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// newLogger returns a logfmt logger filtered at the named level. Unknown
// names fall back to info; loadConfig rejects them before we get here.
func newLogger(w io.Writer, name string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	opt, ok := levelOption(name)
	if !ok {
		opt = level.AllowInfo()
	}
	logger = level.NewFilter(logger, opt)
	// With must wrap the filter, or caller resolves to go-kit's level.go.
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func levelOption(name string) (level.Option, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug(), true
	case "", "info":
		return level.AllowInfo(), true
	case "warn", "warning":
		return level.AllowWarn(), true
	case "error":
		return level.AllowError(), true
	}
	return nil, false
}

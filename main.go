package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mordilloSan/prettylog/prettylog"
)

// Example demonstrating prettylog usage.
func main() {
	// Initialize once at startup. Color is auto-detected, so piping the
	// output of this program through `cat` switches to the plain format.
	// Usage: ./prettylog
	err := prettylog.Init(prettylog.Config{
		Destination: prettylog.Stdout,
		Level:       prettylog.LevelTrace, // Raise this to quiet the output.
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	slog.Log(context.Background(), prettylog.LevelTrace, "tracing enabled")
	slog.Debug("starting up")
	slog.Info("hello", "who", "world")
	slog.Warn("be careful")
	slog.Error("oops", "cause", "something happened")

	// Derived loggers carry persistent attributes.
	reqLog := slog.With("request_id", "9f1c2d")
	reqLog.Info("request completed",
		"duration_ms", 42,
		"status", 200,
		"path", "/api/users")

	// WithGroup names show up as the target column.
	dbLog := slog.Default().WithGroup("db")
	dbLog.Info("connected", "host", "localhost", "port", 5432)

	// A second initialization is rejected.
	if err := prettylog.InitDefaults(); err != nil {
		slog.Warn("re-initialization refused", "error", err)
	}
}

// Package prettylog installs a pretty, optionally colorized console
// handler as the process-wide slog default.
//
// # Console Output
//
// Records are rendered as one pipe-separated line per record:
//
//	INFO |2026/08/30 12:00:00|myapp/server|listening addr=:8080
//
// The module column is the package of the logging call site. Loggers
// derived with WithGroup add a target column when it differs from the
// module. Both columns are padded to the widest value seen so far, so
// output stays aligned as the process runs.
//
// # Features
//
//   - One-time global installation with ErrAlreadyInitialized on reuse
//   - Tri-state color mode: always, never, or auto-detect from the terminal
//   - Per-level ANSI themes with a plain fallback for non-terminal output
//   - Trace level below slog.LevelDebug
//   - Attributes rendered as key=value pairs with group-qualified keys
//
// # Usage
//
// Initialize once at startup, before any goroutine logs:
//
//	if err := prettylog.Init(prettylog.Config{Level: slog.LevelDebug}); err != nil {
//	    // a global logger was already installed
//	}
//	slog.Info("server started", "port", 8080)
//
// The zero-value Config logs to stderr at the info level and uses color
// only when stderr is an interactive terminal. InitDefaults and InitLevel
// cover the common cases:
//
//	prettylog.InitDefaults()
//	prettylog.InitLevel(slog.LevelWarn)
//
// The handler can also be used without touching global state:
//
//	logger := slog.New(prettylog.NewHandler(os.Stdout, nil))
//
// Configuration is explicit: no environment variables are consulted.
package prettylog

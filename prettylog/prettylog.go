package prettylog

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

// ErrAlreadyInitialized is returned by Init when the global logger has
// already been installed by this package.
var ErrAlreadyInitialized = errors.New("prettylog: global logger already initialized")

// Destination selects where log lines are written.
type Destination int

const (
	// Stderr writes to standard error. This is the default.
	Stderr Destination = iota
	// Stdout writes to standard output.
	Stdout
)

// ColorMode decides whether the installed handler styles output with ANSI
// escape sequences.
type ColorMode int

const (
	// ColorAuto enables color only when the destination is an interactive
	// terminal. This is the default.
	ColorAuto ColorMode = iota
	// ColorAlways enables color unconditionally.
	ColorAlways
	// ColorNever disables color.
	ColorNever
)

// Config defines options for Init. The zero value logs to stderr at the
// info level with automatic color detection.
type Config struct {
	// Destination selects stderr or stdout console output.
	// Default: Stderr
	Destination Destination
	// Level is the minimum severity that will be emitted.
	// Default: slog.LevelInfo
	Level slog.Level
	// Color controls ANSI color output for console logs.
	// Default: ColorAuto
	Color ColorMode
	// Theme overrides the color scheme. When nil, the resolved color mode
	// picks DefaultTheme or EmptyTheme.
	Theme *Theme
}

// Dependency injection points for testing outputs and terminal detection.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr

	isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }
)

// installed guards the one-time global installation.
var installed atomic.Bool

// Writer returns the io.Writer for the destination.
func (d Destination) Writer() io.Writer {
	if d == Stdout {
		return outStdout
	}
	return outStderr
}

// IsTerminal reports whether the destination is attached to an interactive
// terminal.
func (d Destination) IsTerminal() bool {
	if d == Stdout {
		return isTerminal(os.Stdout)
	}
	return isTerminal(os.Stderr)
}

// String returns "stdout" or "stderr".
func (d Destination) String() string {
	if d == Stdout {
		return "stdout"
	}
	return "stderr"
}

// resolve reduces the mode to a concrete use-color decision for the given
// destination.
func (m ColorMode) resolve(d Destination) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return d.IsTerminal()
	}
}

// Init builds a console handler from config and installs it as the
// process-wide default slog logger.
//
// Initialization is a single irreversible transition. The second and every
// later call returns ErrAlreadyInitialized and leaves the first
// installation untouched. A default logger installed by other code calling
// slog.SetDefault directly cannot be detected here.
//
// Call Init before any goroutine starts logging.
func Init(config Config) error {
	if !installed.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	theme := config.Theme
	if theme == nil {
		if config.Color.resolve(config.Destination) {
			theme = DefaultTheme()
		} else {
			theme = EmptyTheme()
		}
	}

	handler := NewHandler(config.Destination.Writer(), &HandlerOptions{
		Level: config.Level,
		Theme: theme,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

// InitLevel installs the global logger at the given level, using the
// defaults for the other fields.
func InitLevel(level slog.Level) error {
	return Init(Config{Level: level})
}

// InitDefaults installs the global logger with the defaults: stderr, info
// level, color when stderr is an interactive terminal.
func InitDefaults() error {
	return Init(Config{})
}

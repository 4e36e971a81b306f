package prettylog

import "log/slog"

// LevelTrace extends slog's level ladder below Debug for very verbose
// output. Use it with Logger.Log or Logger.LogAttrs.
const LevelTrace slog.Level = slog.LevelDebug - 4

const ansiReset = "\033[0m"

// Style is a bare ANSI SGR sequence such as "\033[1;31m". The empty style
// leaves text unstyled.
type Style string

// paint wraps text in the style and a reset. The empty style returns text
// unchanged.
func (s Style) paint(text string) string {
	if s == "" {
		return text
	}
	return string(s) + text + ansiReset
}

// Theme is the color scheme applied to level labels.
type Theme struct {
	// Error styles the "ERROR" label.
	Error Style
	// Warn styles the "WARN" label.
	Warn Style
	// Info styles the "INFO" label.
	Info Style
	// Debug styles the "DEBUG" label.
	Debug Style
	// Trace styles the "TRACE" label.
	Trace Style
}

// DefaultTheme returns the standard terminal color scheme:
//
//   - ERROR in bold red
//   - WARN in bold yellow
//   - INFO in cyan
//   - DEBUG in white
//   - TRACE in dimmed white
func DefaultTheme() *Theme {
	return &Theme{
		Error: "\033[1;31m",
		Warn:  "\033[1;33m",
		Info:  "\033[36m",
		Debug: "\033[37m",
		Trace: "\033[2;37m",
	}
}

// EmptyTheme returns a theme that does not style anything.
func EmptyTheme() *Theme {
	return &Theme{}
}

// levelLabel returns the fixed-width label for a level. WARN and INFO are
// padded so the level column keeps its width across levels.
func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN "
	case level >= slog.LevelInfo:
		return "INFO "
	case level >= slog.LevelDebug:
		return "DEBUG"
	default:
		return "TRACE"
	}
}

func (t *Theme) style(level slog.Level) Style {
	switch {
	case level >= slog.LevelError:
		return t.Error
	case level >= slog.LevelWarn:
		return t.Warn
	case level >= slog.LevelInfo:
		return t.Info
	case level >= slog.LevelDebug:
		return t.Debug
	default:
		return t.Trace
	}
}

// paintLevel renders the level label with the theme's style for it.
func (t *Theme) paintLevel(level slog.Level) string {
	return t.style(level).paint(levelLabel(level))
}

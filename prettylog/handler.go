package prettylog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rivo/uniseg"
)

const timeLayout = "2006/01/02 15:04:05"

// HandlerOptions configures NewHandler.
type HandlerOptions struct {
	// Level is the minimum severity the handler emits.
	// Default: slog.LevelInfo
	Level slog.Leveler
	// Theme is the color scheme. When nil, output is plain.
	Theme *Theme
}

// columnWidths tracks the widest module and target seen so far, so the
// columns stay aligned for the life of the handler.
type columnWidths struct {
	module atomic.Uint32
	target atomic.Uint32
}

// observe grows w to at least n and returns the running maximum.
func observe(w *atomic.Uint32, n int) int {
	for {
		old := w.Load()
		if int(old) >= n {
			return int(old)
		}
		if w.CompareAndSwap(old, uint32(n)) {
			return n
		}
	}
}

// Handler is a slog.Handler that renders records as single
// pipe-separated, optionally colorized console lines:
//
//	LEVEL|time|module|message key=value ...
//	LEVEL|time|module|target|message key=value ...
//
// The module column is the package of the logging call site; the target
// column is the handler's WithGroup chain and is shown only when it
// differs from the module.
type Handler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Leveler
	theme  *Theme
	widths *columnWidths
	groups []string
	attrs  string
}

// NewHandler returns a Handler writing to w. Use it with slog.New to build
// a logger without installing it globally; Init is the usual entry point.
func NewHandler(w io.Writer, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	theme := opts.Theme
	if theme == nil {
		theme = EmptyTheme()
	}
	return &Handler{
		mu:     &sync.Mutex{},
		out:    w,
		level:  level,
		theme:  theme,
		widths: &columnWidths{},
	}
}

// Enabled reports whether records at level are emitted.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs returns a handler that includes attrs on every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = h.attrs + encodeAttrs(h.groups, attrs)
	return &h2
}

// WithGroup returns a handler whose records carry name in their target.
// Attribute keys added after the call are qualified with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(h.groups[:len(h.groups):len(h.groups)], name)
	return &h2
}

// Handle renders the record. Whole lines are written under a mutex shared
// by all derived handlers, so concurrent records never interleave.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	b.WriteString(h.theme.paintLevel(r.Level))
	b.WriteByte('|')
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(timeLayout))
		b.WriteByte('|')
	}

	module := callerModule(r.PC)
	writeAligned(&b, module, &h.widths.module)

	if target := strings.Join(h.groups, "."); target != "" && target != module {
		b.WriteByte('|')
		writeAligned(&b, target, &h.widths.target)
	}

	b.WriteByte('|')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	if r.NumAttrs() > 0 {
		attrs := make([]slog.Attr, 0, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			attrs = append(attrs, a)
			return true
		})
		b.WriteString(encodeAttrs(h.groups, attrs))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// writeAligned writes s padded to the widest value seen for its column.
// Widths are counted in grapheme clusters so multi-rune symbols keep the
// columns straight.
func writeAligned(b *strings.Builder, s string, w *atomic.Uint32) {
	n := uniseg.GraphemeClusterCount(s)
	max := observe(w, n)
	b.WriteString(s)
	if max > n {
		b.WriteString(strings.Repeat(" ", max-n))
	}
}

// callerModule derives the package path of the logging call site from the
// record PC.
func callerModule(pc uintptr) string {
	if pc == 0 {
		return "<unknown>"
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.Function == "" {
		return "<unknown>"
	}
	return packageName(frame.Function)
}

// packageName strips the function and receiver from a fully qualified
// runtime function name, keeping the import path.
func packageName(fn string) string {
	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}

// encodeAttrs formats attrs as " key=value" pairs, qualifying keys with
// the open group names. Groups nest with a dot; empty attrs are elided.
func encodeAttrs(groups []string, attrs []slog.Attr) string {
	var b strings.Builder
	prefix := ""
	if len(groups) > 0 {
		prefix = strings.Join(groups, ".") + "."
	}
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			continue
		}
		if a.Value.Kind() == slog.KindGroup {
			sub := groups
			if a.Key != "" {
				sub = append(append([]string(nil), groups...), a.Key)
			}
			b.WriteString(encodeAttrs(sub, a.Value.Group()))
			continue
		}
		fmt.Fprintf(&b, " %s%s=%v", prefix, a.Key, a.Value)
	}
	return b.String()
}

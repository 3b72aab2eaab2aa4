package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const reset = "\033[0m"

type Options struct {
	Level   slog.Leveler
	Source  bool
	NoColor bool
	// Stack appends a goroutine dump to ERROR records that carry an error attr.
	Stack bool
}

type prettyHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	opts  Options
	attrs []slog.Attr
	group string
}

func NewPrettyHandler(out io.Writer, opts *Options) slog.Handler {
	if out == nil {
		out = os.Stdout
	}
	if opts == nil {
		opts = &Options{}
	}
	return &prettyHandler{
		mu:   &sync.Mutex{},
		out:  out,
		opts: *opts,
	}
}

// Init installs the pretty handler as the default slog logger.
func Init(levelName string) *slog.Logger {
	logger := slog.New(NewPrettyHandler(os.Stdout, &Options{
		Level:  ParseLevel(levelName),
		Source: true,
		Stack:  true,
	}))
	slog.SetDefault(logger)
	return logger
}

func (h *prettyHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	if h.opts.Level == nil {
		return true
	}
	return lvl >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s ", r.Time.Format("2006-01-02 15:04:05.000"))

	if h.opts.NoColor {
		fmt.Fprintf(&buf, "%-5s ", levelName(r.Level))
	} else {
		fmt.Fprintf(&buf, "%s%-5s%s ", colorForLevel(r.Level), levelName(r.Level), reset)
	}

	if h.opts.Source {
		if file, line := resolveCaller(r.PC); file != "" {
			fmt.Fprintf(&buf, "%-25s ", fmt.Sprintf("%s:%d", filepath.Base(file), line))
		}
	}

	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&buf, "", a)
	}

	var errVal error
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "error" {
			if e, ok := a.Value.Any().(error); ok {
				errVal = e
			}
		}
		writeAttr(&buf, h.group, a)
		return true
	})

	buf.WriteByte('\n')

	if errVal != nil && h.opts.Stack && r.Level >= slog.LevelError {
		buf.Write(debug.Stack())
		buf.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	clone.group = name
	return &clone
}

func writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, inner := range a.Value.Group() {
			writeAttr(buf, key, inner)
		}
		return
	}
	fmt.Fprintf(buf, " %s=%v", key, a.Value.Resolve().Any())
}

func levelName(l slog.Level) string {
	switch {
	case l <= slog.LevelDebug:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}

// ParseLevel maps a config level name to a slog level, INFO when unknown.
func ParseLevel(l string) slog.Level {
	switch strings.ToLower(l) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func colorForLevel(l slog.Level) string {
	switch {
	case l <= slog.LevelDebug:
		return "\033[36m" // cyan
	case l < slog.LevelWarn:
		return "\033[32m" // green
	case l < slog.LevelError:
		return "\033[33m" // yellow
	default:
		return "\033[31m" // red
	}
}

// resolveCaller returns the first frame outside internal/logging, starting at pc.
func resolveCaller(pc uintptr) (string, int) {
	if pc == 0 {
		return "", 0
	}

	frames := runtime.CallersFrames([]uintptr{pc})
	sep := string(os.PathSeparator)
	for {
		f, more := frames.Next()
		if !strings.Contains(f.File, sep+"internal"+sep+"logging"+sep) {
			return f.File, f.Line
		}
		if !more {
			return "", 0
		}
	}
}

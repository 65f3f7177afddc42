package slogcustom

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// Handler is a compact single-line slog handler with coloured levels.
type Handler struct {
	l      *log.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
	levels map[slog.Level]*color.Color
	key    *color.Color
}

// NewHandler returns a handler writing to out. Colours are disabled when
// colored is false, which is what a log file wants.
func NewHandler(out io.Writer, level slog.Leveler, colored bool) *Handler {
	h := &Handler{
		l:     log.New(out, "", 0),
		level: level,
		levels: map[slog.Level]*color.Color{
			slog.LevelDebug: color.New(color.FgMagenta),
			slog.LevelInfo:  color.New(color.FgHiBlue),
			slog.LevelWarn:  color.New(color.FgYellow),
			slog.LevelError: color.New(color.FgRed),
		},
		key: color.New(color.FgGreen),
	}
	for _, c := range h.levels {
		setColor(c, colored)
	}
	setColor(h.key, colored)
	return h
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	if c, ok := h.levels[r.Level]; ok {
		level = c.Sprint(level)
	}

	var b strings.Builder
	for _, a := range h.attrs {
		h.writeAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, h.qualify(a))
		return true
	})

	h.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSuffix(b.String(), " "),
	)
	return nil
}

func (h *Handler) writeAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteString(h.key.Sprint(a.Key))
	b.WriteString("=")
	b.WriteString(fmt.Sprint(a.Value.Resolve().Any()))
	b.WriteString(" ")
}

func (h *Handler) qualify(a slog.Attr) slog.Attr {
	if h.group == "" {
		return a
	}
	a.Key = h.group + "." + a.Key
	return a
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		h2.attrs = append(h2.attrs, h.qualify(a))
	}
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h.group != "" {
		h2.group = h.group + "." + name
	} else {
		h2.group = name
	}
	return &h2
}

// ParseLevel maps a config string such as "debug" or "WARN" to a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return l, nil
}

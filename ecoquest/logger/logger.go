package logger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

// CustomHandler renders structured records as colorized single-line console
// output. The "type" attribute groups records (db, http, sys) the same way
// across the whole service.
type CustomHandler struct {
	opts      *slog.HandlerOptions
	prefix    string
	startTime time.Time
	attrs     []slog.Attr
	groups    []string
}

func NewHandler(prefix string, level slog.Level) *CustomHandler {
	return &CustomHandler{
		opts:      &slog.HandlerOptions{Level: level},
		prefix:    prefix,
		startTime: time.Now(),
		attrs:     make([]slog.Attr, 0),
		groups:    make([]string, 0),
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CustomHandler{
		opts:      h.opts,
		prefix:    h.prefix,
		startTime: h.startTime,
		attrs:     append(h.attrs, attrs...),
		groups:    h.groups,
	}
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	return &CustomHandler{
		opts:      h.opts,
		prefix:    h.prefix,
		startTime: h.startTime,
		attrs:     h.attrs,
		groups:    append(h.groups, name),
	}
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	timestamp := time.Now().Format("15:04:05")

	var levelColor, levelText string
	switch r.Level {
	case slog.LevelDebug:
		levelColor = colorPurple
		levelText = "DEBUG"
	case slog.LevelInfo:
		levelColor = colorGreen
		levelText = "INFO"
	case slog.LevelWarn:
		levelColor = colorYellow
		levelText = "WARN"
	case slog.LevelError:
		levelColor = colorRed
		levelText = "ERROR"
	}

	logType := "SYS"
	var attrsStr strings.Builder
	appendAttr := func(attr slog.Attr) {
		if attr.Key == "type" {
			logType = strings.ToUpper(attr.Value.String())
			return
		}
		fmt.Fprintf(&attrsStr, " %s=%v", attr.Key, attr.Value)
	}
	for _, attr := range h.attrs {
		appendAttr(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(attr)
		return true
	})

	fmt.Printf("%s[%s] [%s] [%s%s%s] [%s] %s%s%s\n",
		colorWhite,
		h.prefix,
		timestamp,
		levelColor,
		levelText,
		colorWhite,
		logType,
		r.Message,
		attrsStr.String(),
		colorReset,
	)
	return nil
}

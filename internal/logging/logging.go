package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Mode selects how log records are formatted and filtered.
type Mode uint8

const (
	// ModeDev writes human-readable text at debug level.
	ModeDev Mode = iota
	// ModeProd writes JSON at info level.
	ModeProd
	// ModeSilence discards everything.
	ModeSilence
)

// ParseMode maps "dev", "prod" or "silence" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev":
		return ModeDev, nil
	case "prod":
		return ModeProd, nil
	case "silence", "off":
		return ModeSilence, nil
	}
	return ModeDev, fmt.Errorf("unknown log mode %q", s)
}

// New returns a logger for mode writing to w. A nil w means stderr.
func New(mode Mode, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	switch mode {
	case ModeProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case ModeSilence:
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02 15:04:05"

// levelSplitter sends warnings and below to out, errors and above to errOut
type levelSplitter struct {
	out    io.Writer
	errOut io.Writer
}

func (l levelSplitter) Write(p []byte) (int, error) {
	return l.out.Write(p)
}

func (l levelSplitter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level <= zerolog.WarnLevel {
		return l.out.Write(p)
	}
	return l.errOut.Write(p)
}

// ParseLevel maps a LOG_LEVEL value to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds the process logger. format "json" writes raw JSON lines to
// stdout; anything else writes human-readable console output.
func New(level, format string) zerolog.Logger {
	var w io.Writer
	if strings.EqualFold(format, "json") {
		w = os.Stdout
	} else {
		w = levelSplitter{
			out:    zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat},
			errOut: zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat},
		}
	}

	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config string to a zerolog level. Unknown or empty
// strings fall back to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// New builds the console logger used by every subsystem.
// A nil writer means stderr, the only sink that gets colors.
func New(level string, out io.Writer) zerolog.Logger {
	noColor := out != nil
	if out == nil {
		out = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: noColor}
	return zerolog.New(console).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ForSystem tags a logger with the system that owns it.
func ForSystem(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("system", name).Logger()
}

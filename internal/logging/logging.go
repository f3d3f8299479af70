// Package logging builds the structured loggers used by the kata programs.
// Narration is written to stdout by the katas themselves; loggers write diagnostics to a separate writer,
// usually stderr.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Standard field keys.
const (
	FieldScenario = "scenario"
	FieldIndex    = "index"
	FieldElement  = "element"
)

// Config contains logging configuration.
type Config struct {
	Level   string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format  string `mapstructure:"format" validate:"oneof=console json"`
	NoColor bool   `mapstructure:"no_color"`
}

// New creates a logger writing to w.
// An empty or unknown level falls back to info, and any format other than json produces console output.
func New(cfg Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger

	if strings.EqualFold(cfg.Format, FormatJSON) {
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    cfg.NoColor,
		})
	}

	return zl.Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

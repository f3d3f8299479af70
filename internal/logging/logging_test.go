package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestNew_JSON(t *testing.T) {
	is := is.New(t)

	buf := bytes.Buffer{}

	log := New(Config{Level: "info", Format: FormatJSON}, &buf)
	log.Info().Str(FieldScenario, "streams").Msg("scenario started")

	entry := map[string]any{}
	is.NoErr(json.Unmarshal(buf.Bytes(), &entry))

	is.Equal(entry["level"], "info")
	is.Equal(entry["message"], "scenario started")
	is.Equal(entry[FieldScenario], "streams")
	is.True(entry["time"] != nil)
}

func TestNew_Level(t *testing.T) {
	is := is.New(t)

	buf := bytes.Buffer{}

	log := New(Config{Level: "warn", Format: FormatJSON}, &buf)
	log.Info().Msg("hidden")
	log.Debug().Msg("hidden")

	is.Equal(buf.Len(), 0)

	log.Warn().Msg("shown")

	is.True(strings.Contains(buf.String(), "shown"))
}

func TestNew_DefaultLevel(t *testing.T) {
	tests := []string{"", "INFO", "nonsense"}

	for _, level := range tests {
		t.Run(level, func(t *testing.T) {
			is := is.New(t)

			buf := bytes.Buffer{}

			log := New(Config{Level: level, Format: FormatJSON}, &buf)
			log.Debug().Msg("hidden")
			log.Info().Msg("shown")

			is.True(!strings.Contains(buf.String(), "hidden"))
			is.True(strings.Contains(buf.String(), "shown"))
		})
	}
}

func TestNew_Console(t *testing.T) {
	is := is.New(t)

	buf := bytes.Buffer{}

	log := New(Config{Level: "debug", Format: FormatConsole, NoColor: true}, &buf)
	log.Debug().Uint64(FieldIndex, 2).Msg("element processed")

	out := buf.String()

	is.True(strings.Contains(out, "DBG"))
	is.True(strings.Contains(out, "element processed"))
	is.True(strings.Contains(out, "index=2"))
	is.True(!strings.Contains(out, "\x1b["))
}

func TestNop(t *testing.T) {
	is := is.New(t)

	log := Nop()
	log.Error().Msg("discarded")

	is.Equal(log.GetLevel(), zerolog.Disabled)
}

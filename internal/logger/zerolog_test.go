package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	req := require.New(t)

	req.Equal(zerolog.DebugLevel, ParseLevel("debug"))
	req.Equal(zerolog.WarnLevel, ParseLevel(" WARN "))
	req.Equal(zerolog.ErrorLevel, ParseLevel("error"))
	req.Equal(zerolog.InfoLevel, ParseLevel(""))
	req.Equal(zerolog.InfoLevel, ParseLevel("loud"))
}

func TestNew_FiltersBelowLevelAndTagsComponent(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	log := Component(New(&buf, "warn"), "greeter")
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	var entry map[string]any
	req.NoError(json.Unmarshal(buf.Bytes(), &entry))
	req.Equal("kept", entry["message"])
	req.Equal("warn", entry["level"])
	req.Equal("greeter", entry["component"])
	req.Contains(entry, "time")
}

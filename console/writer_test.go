//go:build !wasm
// +build !wasm

package console

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWriter_ReportsFullLength(t *testing.T) {
	req := require.New(t)
	w := Writer{}
	line := []byte(`{"level":"error","message":"failed to parse text"}` + "\n")

	for _, level := range []zerolog.Level{zerolog.DebugLevel, zerolog.WarnLevel, zerolog.ErrorLevel, zerolog.NoLevel} {
		n, err := w.WriteLevel(level, line)
		req.NoError(err)
		req.Equal(len(line), n)
	}

	n, err := w.Write(line)
	req.NoError(err)
	req.Equal(len(line), n)
}

func TestWriter_BacksZerolog(t *testing.T) {
	log := zerolog.New(Writer{})

	require.NotPanics(t, func() {
		log.Error().Msg("failed to parse text")
		log.Warn().Msg("slow")
		log.Info().Msg("mounted")
	})
}

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	prevTS := zerolog.TimestampFunc
	prevFormat := zerolog.TimeFieldFormat
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
		zerolog.TimestampFunc = prevTS
		zerolog.TimeFieldFormat = prevFormat
	})
}

func TestSetup_WritesFileAndConsole(t *testing.T) {
	restoreGlobals(t)

	path := filepath.Join(t.TempDir(), "logs", "onair.log")
	var console bytes.Buffer
	closer, err := Setup(Options{File: path, Console: &console})
	require.NoError(t, err)

	log.Info().Str("channel", "kruge").Msg("has gone live")
	log.Debug().Msg("hidden at info level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"channel":"kruge"`)
	assert.Contains(t, string(data), "has gone live")
	assert.NotContains(t, string(data), "hidden at info level")
	assert.Contains(t, console.String(), "has gone live")
}

func TestSetup_DebugLevel(t *testing.T) {
	restoreGlobals(t)

	var console bytes.Buffer
	_, err := Setup(Options{Console: &console, Debug: true})
	require.NoError(t, err)

	log.Debug().Msg("request url")
	assert.Contains(t, console.String(), "request url")
}

func TestSetup_TimestampsUseOffset(t *testing.T) {
	restoreGlobals(t)

	_, err := Setup(Options{UTCOffsetHours: -5})
	require.NoError(t, err)

	_, offset := zerolog.TimestampFunc().Zone()
	assert.Equal(t, -5*3600, offset)
}

func TestZone(t *testing.T) {
	assert.Equal(t, time.UTC, Zone(0))
	assert.Equal(t, "UTC+9", Zone(9).String())
	assert.Equal(t, "UTC-5", Zone(-5).String())
}

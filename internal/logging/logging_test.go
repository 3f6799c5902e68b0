package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileSink(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "run.log")

	log, closer, err := New("debug", logFile)
	require.NoError(t, err)

	log.Info().Str("k", "v").Msg("hello sink")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello sink")
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNew_BadLevelFallsBack(t *testing.T) {
	log, closer, err := New("chatty", "")
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNew_NoFileSink(t *testing.T) {
	_, closer, err := New("info", "")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{99, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel())
	}
}

func TestGetLoggerAddsComponent(t *testing.T) {
	old := log.Logger
	defer func() { log.Logger = old }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("render")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"render"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestWithFields(t *testing.T) {
	old := log.Logger
	defer func() { log.Logger = old }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := WithFields(map[string]interface{}{"theme": "default"})
	logger.Info().Msg("loaded")

	assert.Contains(t, buf.String(), `"theme":"default"`)
}

func TestLogFilePathUnderStateDir(t *testing.T) {
	path := getLogFilePath()
	assert.True(t, strings.HasSuffix(path, "clicycle.log"))
	assert.Contains(t, path, "clicycle")
}

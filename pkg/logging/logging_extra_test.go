package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(GetLogger("autoargs"), "build")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, `"component":"autoargs"`)
	assert.Contains(t, output, "duration")
}

func TestSetupLoggerWithOutput(t *testing.T) {
	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "out.log")

	SetupLoggerWithOutput(0, logFile, &buf)
	logger := GetLogger("test")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		levelName string
		wantLevel zerolog.Level
	}{
		{"default info level", 0, "", zerolog.InfoLevel},
		{"debug level", 1, "", zerolog.DebugLevel},
		{"trace level", 2, "", zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, "", zerolog.TraceLevel},
		{"level name wins over verbosity", 2, "WARNING", zerolog.WarnLevel},
		{"upper case level name", 0, "ERROR", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			require.NoError(t, SetupLogger(tt.verbosity, tt.levelName))
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, AppName, LogFileName)
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestSetupLoggerRejectsUnknownLevel(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	err := SetupLogger(0, "loud")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("critical")
	require.NoError(t, err)
	assert.Equal(t, zerolog.FatalLevel, level)

	_, err = ParseLevel("")
	assert.Error(t, err)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, "/custom/state/dotstree/dots.log", getLogFilePath())
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("specs.locator")
	assert.NotNil(t, logger)
}

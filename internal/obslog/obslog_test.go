package obslog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildJSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Build(Options{Level: "info", Format: "json", Console: true, Output: &buf})
	require.NoError(t, err)
	assert.Nil(t, closer)

	logger.Debug("hidden")
	logger.Info("game finished", zap.Int("disks", 3))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "game finished", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 3, entry["disks"])
}

func TestBuildWithoutCoresIsNop(t *testing.T) {
	logger, closer, err := Build(Options{})
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.NotNil(t, logger)
}

func TestInitFileAndCleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hanoi.log")
	cleanup, err := Init(Options{Level: "debug", Format: "console", ToFile: true, FilePath: path})
	require.NoError(t, err)

	L().Info("written to file")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.False(t, L().Core().Enabled(zapcore.ErrorLevel), "cleanup restores the nop logger")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

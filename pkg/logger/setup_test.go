package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerClient_RejectsUnknownEncoding(t *testing.T) {
	_, err := NewLoggerClient(Config{Encoding: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestNewLoggerClient_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hammer.log")

	log, err := NewLoggerClient(Config{
		Level:       Info,
		Encoding:    EncodingJSON,
		OutputPath:  path,
		ServiceName: "knn-hammer-test",
	})
	require.NoError(t, err)

	log.Debug("hidden", nil)
	log.Info("Index count", nil, map[string]interface{}{"count": 300})
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Index count", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(300), entry["count"])
	assert.Equal(t, "knn-hammer-test", entry["service"])
}

func TestNewLoggerClient_ConsoleToFileHasNoColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hammer.log")

	log, err := NewLoggerClient(Config{Level: Info, Encoding: EncodingConsole, OutputPath: path})
	require.NoError(t, err)
	log.Info("Running query", nil, map[string]interface{}{"query": 100})
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO Running query")
	assert.NotContains(t, string(data), "\x1b[")
}

func TestColorLevels(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	isTerminal = func(int) bool { return true }
	assert.True(t, colorLevels("stdout"))
	assert.True(t, colorLevels("stderr"))
	assert.False(t, colorLevels("/var/log/hammer.log"))

	isTerminal = func(int) bool { return false }
	assert.False(t, colorLevels("stdout"))
	assert.False(t, colorLevels("stderr"))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, "debug", levelFor(Debug).String())
	assert.Equal(t, "warn", levelFor(Warning).String())
	assert.Equal(t, "error", levelFor(Error).String())
	assert.Equal(t, "info", levelFor("production").String())
}

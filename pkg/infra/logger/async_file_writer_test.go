package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncFileWriter_CloseFlushesQueuedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutor.log")
	w, err := NewAsyncFileWriter(path, 1024)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err := w.Write([]byte("line\n"))
		require.NoError(t, err)
	}
	w.Close()
	w.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(string(data), "line\n"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
}

func TestLogFilePath_RejectsEscapes(t *testing.T) {
	_, err := logFilePath("../outside")
	assert.Error(t, err)

	p, err := logFilePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("logs", "tutor.log"), p)
}

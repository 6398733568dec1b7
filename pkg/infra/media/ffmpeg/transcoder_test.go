package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/infra/execx"
	"github.com/NeuralTrust/TutorGate/pkg/infra/execx/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestTranscoder_Normalize_ReplacesOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audio_abc.wav")
	tmp := filepath.Join(dir, "temp_audio_abc.wav")
	writeFile(t, path, "original")

	runner := mocks.NewRunner(t)
	runner.EXPECT().
		Run(mock.Anything, execx.Command{
			Name:    "ffmpeg",
			Args:    []string{"-y", "-i", path, "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", tmp},
			Timeout: 10 * time.Second,
		}).
		RunAndReturn(func(_ context.Context, c execx.Command) (*execx.Result, error) {
			writeFile(t, c.Args[len(c.Args)-1], "normalized")
			return &execx.Result{}, nil
		})

	require.NoError(t, NewTranscoder(Config{}, runner).Normalize(context.Background(), path))

	assert.Equal(t, "normalized", readFile(t, path))
	_, err := os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))
}

func TestTranscoder_Normalize_FailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audio_abc.wav")
	writeFile(t, path, "original")

	runner := mocks.NewRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c execx.Command) (*execx.Result, error) {
			writeFile(t, c.Args[len(c.Args)-1], "half written")
			return nil, execx.ErrTimeout
		})

	err := NewTranscoder(Config{}, runner).Normalize(context.Background(), path)

	assert.ErrorIs(t, err, execx.ErrTimeout)
	assert.Equal(t, "original", readFile(t, path))
	_, statErr := os.Stat(filepath.Join(dir, "temp_audio_abc.wav"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestTranscoder_Normalize_NoOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audio_abc.wav")
	writeFile(t, path, "original")

	runner := mocks.NewRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything).Return(&execx.Result{}, nil)

	err := NewTranscoder(Config{Binary: "/opt/ffmpeg/bin/ffmpeg", Timeout: time.Second}, runner).
		Normalize(context.Background(), path)

	assert.ErrorIs(t, err, ErrNoOutput)
	assert.Equal(t, "original", readFile(t, path))
}

func TestTranscoder_Available(t *testing.T) {
	runner := mocks.NewRunner(t)
	runner.EXPECT().LookPath("ffmpeg").Return("", errors.New("not found"))

	assert.Error(t, NewTranscoder(Config{}, runner).Available())
}

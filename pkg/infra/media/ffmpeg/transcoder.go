package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/infra/execx"
	"github.com/NeuralTrust/TutorGate/pkg/infra/storage"
)

var ErrNoOutput = errors.New("transcoder produced no output")

type Config struct {
	Binary  string
	Timeout time.Duration
}

// Transcoder rewrites audio in place as 16 kHz mono 16-bit PCM WAV, the
// format the renderer expects.
type Transcoder struct {
	cfg    Config
	runner execx.Runner
}

func NewTranscoder(cfg Config, runner execx.Runner) *Transcoder {
	if cfg.Binary == "" {
		cfg.Binary = "ffmpeg"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = common.TranscodeTimeout
	}
	return &Transcoder{cfg: cfg, runner: runner}
}

func (t *Transcoder) Available() error {
	if _, err := t.runner.LookPath(t.cfg.Binary); err != nil {
		return fmt.Errorf("%s not found: %w", t.cfg.Binary, err)
	}
	return nil
}

// Normalize leaves path untouched on any failure. On success the converted
// file is renamed over path, so path always names a complete file.
func (t *Transcoder) Normalize(ctx context.Context, path string) error {
	tmp := storage.TempAudioPath(path)

	_, err := t.runner.Run(ctx, execx.Command{
		Name: t.cfg.Binary,
		Args: []string{
			"-y",
			"-i", path,
			"-acodec", "pcm_s16le",
			"-ar", "16000",
			"-ac", "1",
			tmp,
		},
		Timeout: t.cfg.Timeout,
	})
	if err != nil {
		removeQuietly(tmp)
		return fmt.Errorf("ffmpeg normalize failed: %w", err)
	}

	info, err := os.Stat(tmp)
	if err != nil || info.Size() == 0 {
		removeQuietly(tmp)
		return ErrNoOutput
	}
	if err := os.Rename(tmp, path); err != nil {
		removeQuietly(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func removeQuietly(path string) {
	_ = os.Remove(path)
}

package wav2lip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/infra/execx"
)

var ErrNoOutput = errors.New("renderer produced no output")

type Config struct {
	Python     string
	Dir        string
	Script     string
	Checkpoint string
	Face       string
	Timeout    time.Duration
	Pads       []int
	NoSmooth   bool
}

// Renderer runs the Wav2Lip inference script to lip-sync the face clip to an audio file.
type Renderer struct {
	cfg    Config
	runner execx.Runner
}

func NewRenderer(cfg Config, runner execx.Runner) *Renderer {
	if cfg.Python == "" {
		cfg.Python = "python3"
	}
	if cfg.Script == "" {
		cfg.Script = "inference.py"
	}
	if cfg.Checkpoint == "" {
		cfg.Checkpoint = filepath.Join("checkpoints", "wav2lip_gan.pth")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = common.RenderTimeout
	}
	if len(cfg.Pads) != 4 {
		cfg.Pads = []int{0, 10, 0, 0}
	}
	return &Renderer{cfg: cfg, runner: runner}
}

// Available checks the prerequisites once: the face clip and the inference script.
func (r *Renderer) Available() error {
	if !isFile(r.cfg.Face) {
		return fmt.Errorf("face clip not found: %s", r.cfg.Face)
	}
	script := filepath.Join(r.cfg.Dir, r.cfg.Script)
	if !isFile(script) {
		return fmt.Errorf("inference script not found: %s", script)
	}
	return nil
}

// Render succeeds only when the script exits cleanly and outPath exists.
func (r *Renderer) Render(ctx context.Context, audioPath, outPath string) error {
	args, err := r.args(audioPath, outPath)
	if err != nil {
		return err
	}

	_, err = r.runner.Run(ctx, execx.Command{
		Name:    r.cfg.Python,
		Args:    args,
		Dir:     r.cfg.Dir,
		Timeout: r.cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("wav2lip render failed: %w", err)
	}
	if !isFile(outPath) {
		return ErrNoOutput
	}
	return nil
}

// args makes every file argument absolute since the script runs from its own directory.
func (r *Renderer) args(audioPath, outPath string) ([]string, error) {
	face, err := filepath.Abs(r.cfg.Face)
	if err != nil {
		return nil, err
	}
	audio, err := filepath.Abs(audioPath)
	if err != nil {
		return nil, err
	}
	out, err := filepath.Abs(outPath)
	if err != nil {
		return nil, err
	}

	args := []string{
		r.cfg.Script,
		"--checkpoint_path", r.cfg.Checkpoint,
		"--face", face,
		"--audio", audio,
		"--outfile", out,
		"--pads",
	}
	for _, p := range r.cfg.Pads {
		args = append(args, strconv.Itoa(p))
	}
	if r.cfg.NoSmooth {
		args = append(args, "--nosmooth")
	}
	return args, nil
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

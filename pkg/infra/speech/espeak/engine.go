package espeak

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/domain/speech"
	"github.com/NeuralTrust/TutorGate/pkg/infra/execx"
)

const EngineName = "espeak"

const (
	defaultBinary    = "espeak-ng"
	defaultVoice     = "en-us+m3"
	defaultRate      = 165
	defaultAmplitude = 100
	defaultTimeout   = 60 * time.Second
)

type Config struct {
	Binary    string        `mapstructure:"binary"`
	Voice     string        `mapstructure:"voice"`
	Rate      int           `mapstructure:"rate"`
	Amplitude int           `mapstructure:"amplitude"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

func (c *Config) applyDefaults() {
	if c.Binary == "" {
		c.Binary = defaultBinary
	}
	if c.Voice == "" {
		c.Voice = defaultVoice
	}
	if c.Rate == 0 {
		c.Rate = defaultRate
	}
	if c.Amplitude == 0 {
		c.Amplitude = defaultAmplitude
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Engine drives the espeak-ng command line synthesizer.
type Engine struct {
	cfg    Config
	runner execx.Runner
}

func NewEngine(runner execx.Runner) *Engine {
	e := &Engine{runner: runner}
	e.cfg.applyDefaults()
	return e
}

func (e *Engine) Name() string {
	return EngineName
}

func (e *Engine) ValidateConfig(settings map[string]interface{}) error {
	var conf Config
	if err := common.DecodeSettings(settings, &conf); err != nil {
		return err
	}
	if conf.Rate < 0 || conf.Rate > 1000 {
		return fmt.Errorf("rate %d out of range", conf.Rate)
	}
	if conf.Amplitude < 0 || conf.Amplitude > 200 {
		return fmt.Errorf("amplitude %d out of range", conf.Amplitude)
	}
	return nil
}

func (e *Engine) WithSettings(settings map[string]interface{}) (speech.Synthesizer, error) {
	var conf Config
	if err := common.DecodeSettings(settings, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	return &Engine{cfg: conf, runner: e.runner}, nil
}

func (e *Engine) Available(_ context.Context) error {
	if _, err := e.runner.LookPath(e.cfg.Binary); err != nil {
		return fmt.Errorf("%s not found: %w", e.cfg.Binary, err)
	}
	return nil
}

func (e *Engine) Synthesize(ctx context.Context, text, outPath string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("nothing to synthesize")
	}
	_, err := e.runner.Run(ctx, execx.Command{
		Name:    e.cfg.Binary,
		Args:    e.args(text, outPath),
		Timeout: e.cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("espeak synthesis failed: %w", err)
	}
	return nil
}

func (e *Engine) args(text, outPath string) []string {
	// a leading dash would be parsed as a flag
	if strings.HasPrefix(text, "-") {
		text = " " + text
	}
	return []string{
		"-v", e.cfg.Voice,
		"-s", strconv.Itoa(e.cfg.Rate),
		"-a", strconv.Itoa(e.cfg.Amplitude),
		"-w", outPath,
		text,
	}
}

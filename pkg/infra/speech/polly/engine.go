package polly

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/domain/speech"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/aws/smithy-go"
)

const EngineName = "polly"

const (
	defaultRegion     = "us-east-1"
	defaultVoice      = "Matthew"
	defaultEngine     = "neural"
	defaultTimeout    = 30 * time.Second
	defaultSampleRate = 16000
)

var (
	ErrThrottled   = errors.New("polly throttled the request")
	ErrRejected    = errors.New("polly rejected the request")
	ErrEmptyStream = errors.New("polly returned no audio")
)

type synthClient interface {
	SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
}

type Config struct {
	Region  string        `mapstructure:"region"`
	VoiceID string        `mapstructure:"voice_id"`
	Engine  string        `mapstructure:"engine"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Region) == "" {
		c.Region = defaultRegion
	}
	if strings.TrimSpace(c.VoiceID) == "" {
		c.VoiceID = defaultVoice
	}
	if strings.TrimSpace(c.Engine) == "" {
		c.Engine = defaultEngine
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

type Engine struct {
	mu     sync.Mutex
	client synthClient
	cfg    Config
}

func NewEngine() *Engine {
	return newEngineWithClient(Config{}, nil)
}

func newEngineWithClient(cfg Config, client synthClient) *Engine {
	cfg.applyDefaults()
	return &Engine{client: client, cfg: cfg}
}

func (e *Engine) Name() string {
	return EngineName
}

func (e *Engine) ValidateConfig(settings map[string]interface{}) error {
	var conf Config
	if err := common.DecodeSettings(settings, &conf); err != nil {
		return err
	}
	switch strings.ToLower(conf.Engine) {
	case "", "neural", "standard":
	default:
		return fmt.Errorf("unsupported polly engine %q", conf.Engine)
	}
	return nil
}

func (e *Engine) WithSettings(settings map[string]interface{}) (speech.Synthesizer, error) {
	var conf Config
	if err := common.DecodeSettings(settings, &conf); err != nil {
		return nil, err
	}
	return newEngineWithClient(conf, nil), nil
}

// Available loads the AWS configuration once; credentials are checked on first use.
func (e *Engine) Available(ctx context.Context) error {
	_, err := e.resolveClient(ctx)
	return err
}

func (e *Engine) Synthesize(ctx context.Context, text, outPath string) error {
	client, err := e.resolveClient(ctx)
	if err != nil {
		return err
	}

	engine := pollytypes.EngineStandard
	if strings.EqualFold(e.cfg.Engine, "neural") {
		engine = pollytypes.EngineNeural
	}
	sampleRate := strconv.Itoa(defaultSampleRate)

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	output, err := client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Engine:       engine,
		OutputFormat: pollytypes.OutputFormatPcm,
		SampleRate:   &sampleRate,
		Text:         &text,
		TextType:     pollytypes.TextTypeText,
		VoiceId:      pollytypes.VoiceId(e.cfg.VoiceID),
	})
	if err != nil {
		return classifyError(err)
	}
	if output == nil || output.AudioStream == nil {
		return ErrEmptyStream
	}
	defer output.AudioStream.Close()

	pcm, err := io.ReadAll(output.AudioStream)
	if err != nil {
		return fmt.Errorf("failed to read polly audio: %w", err)
	}
	if len(pcm) == 0 {
		return ErrEmptyStream
	}
	return writeWAVFile(outPath, pcm, defaultSampleRate)
}

// writeWAVFile writes through a sibling file so outPath never holds a partial WAV.
func writeWAVFile(outPath string, pcm []byte, sampleRate int) error {
	var buf bytes.Buffer
	buf.Grow(wavHeaderSize + len(pcm))
	if err := writeWAVHeader(&buf, sampleRate, len(pcm)); err != nil {
		return err
	}
	buf.Write(pcm)

	partial := outPath + ".part"
	if err := os.WriteFile(partial, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}
	if err := os.Rename(partial, outPath); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("failed to move audio into place: %w", err)
	}
	return nil
}

func classifyError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("polly synthesis interrupted: %w", err)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "TooManyRequestsException", "ThrottlingException":
			return fmt.Errorf("%w: %s", ErrThrottled, apiErr.ErrorMessage())
		case "InvalidSsmlException", "TextLengthExceededException", "LexiconNotFoundException",
			"InvalidSampleRateException", "EngineNotSupportedException":
			return fmt.Errorf("%w: %s: %s", ErrRejected, apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
	}
	return fmt.Errorf("polly synthesis failed: %w", err)
}

func (e *Engine) resolveClient(ctx context.Context) (synthClient, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client != nil {
		return e.client, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(e.cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	e.client = polly.NewFromConfig(awsCfg)
	return e.client, nil
}

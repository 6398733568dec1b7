package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/spf13/viper"
)

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Answer     AnswerConfig     `mapstructure:"answer"`
	Speech     SpeechConfig     `mapstructure:"speech"`
	Transcoder TranscoderConfig `mapstructure:"transcoder"`
	Renderer   RendererConfig   `mapstructure:"renderer"`
	Retention  RetentionConfig  `mapstructure:"retention"`
	Events     EventsConfig     `mapstructure:"events"`
	CORS       CORSConfig       `mapstructure:"cors"`
	WebSocket  WebSocketConfig  `mapstructure:"websocket"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type StorageConfig struct {
	StaticDir string `mapstructure:"static_dir"`
	AudioDir  string `mapstructure:"audio_dir"`
	VideoDir  string `mapstructure:"video_dir"`
	FaceDir   string `mapstructure:"face_dir"`
}

type AnswerConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	Model              string        `mapstructure:"model"`
	Timeout            time.Duration `mapstructure:"timeout"`
	Temperature        float64       `mapstructure:"temperature"`
	NumPredict         int           `mapstructure:"num_predict"`
	TopP               float64       `mapstructure:"top_p"`
	MinLength          int           `mapstructure:"min_length"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
	// BreakerMaxFailures of zero disables the circuit breaker.
	BreakerMaxFailures uint32        `mapstructure:"breaker_max_failures"`
}

type SpeechConfig struct {
	Enabled  bool                   `mapstructure:"enabled"`
	Engine   string                 `mapstructure:"engine"`
	MaxChars int                    `mapstructure:"max_chars"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

type TranscoderConfig struct {
	Binary  string        `mapstructure:"binary"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RendererConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Python        string        `mapstructure:"python"`
	Dir           string        `mapstructure:"dir"`
	Script        string        `mapstructure:"script"`
	Checkpoint    string        `mapstructure:"checkpoint"`
	Face          string        `mapstructure:"face"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Pads          []int         `mapstructure:"pads"`
	NoSmooth      bool          `mapstructure:"nosmooth"`
	MaxConcurrent int64         `mapstructure:"max_concurrent"`
}

type RetentionConfig struct {
	MaxAge        time.Duration `mapstructure:"max_age"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type EventsConfig struct {
	Workers   int              `mapstructure:"workers"`
	QueueSize int              `mapstructure:"queue_size"`
	Exporters []ExporterConfig `mapstructure:"exporters"`
}

type ExporterConfig struct {
	Name     string                 `mapstructure:"name"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

type WebSocketConfig struct {
	MaxConnections int           `mapstructure:"max_connections"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	MaxDuration    time.Duration `mapstructure:"max_duration"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

var globalConfig Config

func Load(configPath string) error {
	registerSwitchDefaults()
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}
	setDefaultValues(&globalConfig)
	return nil
}

// Booleans cannot be defaulted after unmarshalling, so they go through viper.
func registerSwitchDefaults() {
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.enable_latency", true)
	viper.SetDefault("speech.enabled", true)
	viper.SetDefault("renderer.enabled", true)
	viper.SetDefault("renderer.nosmooth", true)
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
		// no file: environment variables and defaults only
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

// Defaults mirror the values the service was first deployed with.
func setDefaultValues(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}

	if cfg.Storage.StaticDir == "" {
		cfg.Storage.StaticDir = "static"
	}
	if cfg.Storage.AudioDir == "" {
		cfg.Storage.AudioDir = filepath.Join(cfg.Storage.StaticDir, "audios")
	}
	if cfg.Storage.VideoDir == "" {
		cfg.Storage.VideoDir = filepath.Join(cfg.Storage.StaticDir, "videos")
	}
	if cfg.Storage.FaceDir == "" {
		cfg.Storage.FaceDir = filepath.Join(cfg.Storage.StaticDir, "input_photos")
	}

	if cfg.Answer.BaseURL == "" {
		cfg.Answer.BaseURL = "http://127.0.0.1:11434"
	}
	if cfg.Answer.Model == "" {
		cfg.Answer.Model = "llama3.2:3b"
	}
	if cfg.Answer.Timeout <= 0 {
		cfg.Answer.Timeout = common.AnswerTimeout
	}
	if cfg.Answer.Temperature == 0 {
		cfg.Answer.Temperature = 0.7
	}
	if cfg.Answer.NumPredict == 0 {
		cfg.Answer.NumPredict = 300
	}
	if cfg.Answer.TopP == 0 {
		cfg.Answer.TopP = 0.9
	}
	if cfg.Answer.MinLength == 0 {
		cfg.Answer.MinLength = common.AnswerMinLength
	}
	if cfg.Answer.BreakerTimeout <= 0 {
		cfg.Answer.BreakerTimeout = 30 * time.Second
	}

	if cfg.Speech.Engine == "" {
		cfg.Speech.Engine = "espeak"
	}
	if cfg.Speech.MaxChars <= 0 {
		cfg.Speech.MaxChars = common.SpeechMaxChars
	}

	if cfg.Transcoder.Binary == "" {
		cfg.Transcoder.Binary = "ffmpeg"
	}
	if cfg.Transcoder.Timeout <= 0 {
		cfg.Transcoder.Timeout = common.TranscodeTimeout
	}

	if cfg.Renderer.Python == "" {
		cfg.Renderer.Python = "python3"
	}
	if cfg.Renderer.Dir == "" {
		cfg.Renderer.Dir = "Wav2Lip"
	}
	if cfg.Renderer.Script == "" {
		cfg.Renderer.Script = "inference.py"
	}
	if cfg.Renderer.Checkpoint == "" {
		cfg.Renderer.Checkpoint = filepath.Join("checkpoints", "wav2lip_gan.pth")
	}
	if cfg.Renderer.Face == "" {
		cfg.Renderer.Face = filepath.Join(cfg.Storage.FaceDir, "face.mp4")
	}
	if cfg.Renderer.Timeout <= 0 {
		cfg.Renderer.Timeout = common.RenderTimeout
	}
	if len(cfg.Renderer.Pads) != 4 {
		cfg.Renderer.Pads = []int{0, 10, 0, 0}
	}
	if cfg.Renderer.MaxConcurrent <= 0 {
		cfg.Renderer.MaxConcurrent = 2
	}

	if cfg.Retention.MaxAge <= 0 {
		cfg.Retention.MaxAge = common.SessionRetention
	}
	if cfg.Retention.SweepInterval <= 0 {
		cfg.Retention.SweepInterval = common.SessionSweepInterval
	}

	if cfg.Events.Workers <= 0 {
		cfg.Events.Workers = 2
	}
	if cfg.Events.QueueSize <= 0 {
		cfg.Events.QueueSize = 1000
	}

	if cfg.WebSocket.MaxConnections <= 0 {
		cfg.WebSocket.MaxConnections = 256
	}
	if cfg.WebSocket.PollInterval <= 0 {
		cfg.WebSocket.PollInterval = common.StatusPollInterval
	}
	if cfg.WebSocket.MaxDuration <= 0 {
		cfg.WebSocket.MaxDuration = common.StatusStreamLimit
	}

	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{"*"}
	}
}

// Defaults returns a configuration populated only with default values.
func Defaults() *Config {
	cfg := &Config{
		Metrics:  MetricsConfig{Enabled: true, EnableLatency: true},
		Speech:   SpeechConfig{Enabled: true},
		Renderer: RendererConfig{Enabled: true, NoSmooth: true},
	}
	setDefaultValues(cfg)
	return cfg
}

func GetConfig() *Config {
	return &globalConfig
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/domain/telemetry"
	"github.com/go-redis/redis/v8"
)

const (
	ExporterName   = "redis"
	defaultChannel = "tutorgate:stages"
)

type Config struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// message is the envelope published on the channel.
type message struct {
	Type  string                `json:"type"`
	Event *telemetry.StageEvent `json:"event"`
}

type Exporter struct {
	cfg    Config
	client *redis.Client
}

func NewRedisExporter() *Exporter {
	return &Exporter{}
}

func newExporterWithClient(cfg Config, client *redis.Client) *Exporter {
	if cfg.Channel == "" {
		cfg.Channel = defaultChannel
	}
	return &Exporter{cfg: cfg, client: client}
}

func (e *Exporter) Name() string {
	return ExporterName
}

func (e *Exporter) ValidateConfig(settings map[string]interface{}) error {
	var conf Config
	if err := common.DecodeSettings(settings, &conf); err != nil {
		return fmt.Errorf("invalid redis config: %w", err)
	}
	if conf.Host == "" {
		return errors.New("redis host is required")
	}
	if conf.Port == "" {
		return errors.New("redis port is required")
	}
	if conf.DB < 0 {
		return errors.New("redis db must not be negative")
	}
	return nil
}

func (e *Exporter) WithSettings(settings map[string]interface{}) (telemetry.Exporter, error) {
	var conf Config
	if err := common.DecodeSettings(settings, &conf); err != nil {
		return nil, fmt.Errorf("invalid redis config: %w", err)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", conf.Host, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})
	return newExporterWithClient(conf, client), nil
}

func (e *Exporter) Handle(ctx context.Context, evt *telemetry.StageEvent) error {
	if e.client == nil {
		return errors.New("redis client is not initialized")
	}
	data, err := json.Marshal(message{Type: evt.Type(), Event: evt})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := e.client.Publish(ctx, e.cfg.Channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (e *Exporter) Close() {
	if e.client != nil {
		_ = e.client.Close()
	}
}

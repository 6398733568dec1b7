package telemetry

import (
	"context"
)

type ExporterDTO struct {
	Name     string                 `json:"name"`
	Settings map[string]interface{} `json:"settings"`
}

type Exporter interface {
	Name() string
	ValidateConfig(settings map[string]interface{}) error
	Handle(ctx context.Context, evt *StageEvent) error
	WithSettings(settings map[string]interface{}) (Exporter, error)
	Close()
}

package telemetry

import (
	"fmt"

	"github.com/NeuralTrust/TutorGate/pkg/domain/telemetry"
)

type ExporterLocator struct {
	exporters map[string]telemetry.Exporter
}

func NewExporterLocator(opts ...ExporterLocatorOption) *ExporterLocator {
	el := &ExporterLocator{
		exporters: make(map[string]telemetry.Exporter),
	}
	for _, opt := range opts {
		opt(el)
	}
	return el
}

func (p *ExporterLocator) GetExporter(exporter telemetry.ExporterDTO) (telemetry.Exporter, error) {
	base, ok := p.exporters[exporter.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exporter: %s", exporter.Name)
	}
	if err := base.ValidateConfig(exporter.Settings); err != nil {
		return nil, err
	}
	return base.WithSettings(exporter.Settings)
}

func (p *ExporterLocator) ValidateExporter(exporter telemetry.ExporterDTO) error {
	base, ok := p.exporters[exporter.Name]
	if !ok {
		return fmt.Errorf("unknown exporter: %s", exporter.Name)
	}
	return base.ValidateConfig(exporter.Settings)
}

// Build resolves every configured exporter. Already built exporters are
// closed when a later one fails.
func (p *ExporterLocator) Build(dtos []telemetry.ExporterDTO) ([]telemetry.Exporter, error) {
	built := make([]telemetry.Exporter, 0, len(dtos))
	for _, dto := range dtos {
		exp, err := p.GetExporter(dto)
		if err != nil {
			for _, b := range built {
				b.Close()
			}
			return nil, fmt.Errorf("exporter %s: %w", dto.Name, err)
		}
		built = append(built, exp)
	}
	return built, nil
}

package speech

import (
	"fmt"
	"sort"

	"github.com/NeuralTrust/TutorGate/pkg/domain/speech"
)

// Engine is a registered, unconfigured synthesizer that can build configured copies.
type Engine interface {
	speech.Synthesizer
	ValidateConfig(settings map[string]interface{}) error
	WithSettings(settings map[string]interface{}) (speech.Synthesizer, error)
}

type EngineLocatorOption func(*EngineLocator)

func WithEngine(engine Engine) EngineLocatorOption {
	return func(l *EngineLocator) {
		if l.engines == nil {
			l.engines = make(map[string]Engine)
		}
		l.engines[engine.Name()] = engine
	}
}

type EngineLocator struct {
	engines map[string]Engine
}

func NewEngineLocator(opts ...EngineLocatorOption) *EngineLocator {
	l := &EngineLocator{
		engines: make(map[string]Engine),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *EngineLocator) GetSynthesizer(name string, settings map[string]interface{}) (speech.Synthesizer, error) {
	base, ok := l.engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown speech engine: %s", name)
	}
	if err := base.ValidateConfig(settings); err != nil {
		return nil, fmt.Errorf("invalid %s settings: %w", name, err)
	}
	return base.WithSettings(settings)
}

func (l *EngineLocator) Engines() []string {
	names := make([]string, 0, len(l.engines))
	for name := range l.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

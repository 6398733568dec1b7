package speech

import (
	"testing"

	"github.com/NeuralTrust/TutorGate/pkg/infra/execx/mocks"
	"github.com/NeuralTrust/TutorGate/pkg/infra/speech/espeak"
	"github.com/NeuralTrust/TutorGate/pkg/infra/speech/polly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocator(t *testing.T) *EngineLocator {
	return NewEngineLocator(
		WithEngine(espeak.NewEngine(mocks.NewRunner(t))),
		WithEngine(polly.NewEngine()),
	)
}

func TestEngineLocator_GetSynthesizer(t *testing.T) {
	locator := newTestLocator(t)

	synth, err := locator.GetSynthesizer("espeak", map[string]interface{}{"voice": "en-gb"})
	require.NoError(t, err)
	assert.Equal(t, "espeak", synth.Name())

	synth, err = locator.GetSynthesizer("polly", nil)
	require.NoError(t, err)
	assert.Equal(t, "polly", synth.Name())
}

func TestEngineLocator_UnknownEngine(t *testing.T) {
	_, err := newTestLocator(t).GetSynthesizer("festival", nil)
	assert.ErrorContains(t, err, "unknown speech engine")
}

func TestEngineLocator_InvalidSettings(t *testing.T) {
	_, err := newTestLocator(t).GetSynthesizer("espeak", map[string]interface{}{"rate": -5})
	assert.ErrorContains(t, err, "invalid espeak settings")
}

func TestEngineLocator_Engines(t *testing.T) {
	assert.Equal(t, []string{"espeak", "polly"}, newTestLocator(t).Engines())
}

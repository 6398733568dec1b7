package common

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeSettings decodes a free-form settings map from the config file into
// out. Durations may be given as strings ("30s") and scalars are weakly typed,
// so YAML and environment overrides decode the same way.
func DecodeSettings(settings map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to build settings decoder: %w", err)
	}
	return decoder.Decode(settings)
}

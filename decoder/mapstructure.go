package decoder

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Mapstructure decodes a value into a target struct using
// github.com/mitchellh/mapstructure with weakly typed input, so string
// values convert to numbers and booleans where the target requires it.
//
// Fields are matched by `mapstructure` tags.
func Mapstructure(data any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}

	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to decode value: %w", err)
	}

	return nil
}

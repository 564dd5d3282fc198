package decoder

import (
	"encoding/json"
	"fmt"
)

// JSON decodes a value into a target struct using a JSON
// marshal/unmarshal round trip.
//
// This is the default decoder used by the package-level Decode helper.
func JSON(data any, target any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := json.Unmarshal(b, target); err != nil {
		return fmt.Errorf("failed to unmarshal to target type: %w", err)
	}

	return nil
}

// Package toml provides pointer-addressed access to TOML documents,
// using github.com/pelletier/go-toml/v2.
//
// Operations decode the document to an any-tree, apply the accessor, and
// re-encode. Comments and key ordering are not preserved across edits.
// The root of a TOML document is always a table, so root-replacing
// inserts must supply a map value.
package toml

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/alekece/json-toolkit/jsonptr"
	"github.com/alekece/json-toolkit/value"
	"github.com/alekece/json-toolkit/value/gojson"
)

// parse decodes TOML bytes into an any-tree rooted at a map. Empty input
// decodes to an empty map.
func parse(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if root == nil {
		root = map[string]any{}
	}
	return root, nil
}

func marshal(root any) ([]byte, error) {
	out, err := toml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return out, nil
}

// Get returns the value addressed by pointer within the TOML document.
// Absence reports false; only malformed input or pointer text errors.
func Get(data []byte, pointer string) (any, bool, error) {
	ptr, err := jsonptr.Parse(pointer)
	if err != nil {
		return nil, false, err
	}

	root, err := parse(data)
	if err != nil {
		return nil, false, err
	}

	v, ok := value.Get[any](gojson.Adapter{}, root, ptr)
	return v, ok, nil
}

// Insert stores v at the location addressed by pointer and returns the
// re-encoded document.
func Insert(data []byte, pointer string, v any) ([]byte, error) {
	ptr, err := jsonptr.Parse(pointer)
	if err != nil {
		return nil, err
	}

	root, err := parse(data)
	if err != nil {
		return nil, err
	}

	if _, _, err := value.Insert[any](gojson.Adapter{}, &root, ptr, v); err != nil {
		return nil, err
	}
	return marshal(root)
}

// Remove deletes the value addressed by pointer and returns the
// re-encoded document. The second return reports whether anything was
// removed.
func Remove(data []byte, pointer string) ([]byte, bool, error) {
	ptr, err := jsonptr.Parse(pointer)
	if err != nil {
		return nil, false, err
	}

	root, err := parse(data)
	if err != nil {
		return nil, false, err
	}

	_, ok, err := value.Remove[any](gojson.Adapter{}, &root, ptr)
	if err != nil {
		return nil, false, err
	}

	out, err := marshal(root)
	if err != nil {
		return nil, false, err
	}
	return out, ok, nil
}

// Package jsonc provides pointer-addressed access to JSONC (JSON with
// comments) documents, using github.com/tailscale/hujson for parsing.
//
// Operations decode the document to an any-tree, apply the accessor, and
// re-encode as standard indented JSON. Comments are not preserved across
// edits; use Get for read-only access to commented configuration files.
package jsonc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"

	"github.com/alekece/json-toolkit/jsonptr"
	"github.com/alekece/json-toolkit/value"
	"github.com/alekece/json-toolkit/value/gojson"
)

// hujsonParse parses JSONC and returns standardized JSON bytes with
// comments and trailing commas stripped.
func hujsonParse(data []byte) ([]byte, error) {
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, err
	}
	v.Standardize()
	return v.Pack(), nil
}

// parse decodes JSONC bytes into an any-tree. Empty input decodes to nil.
func parse(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	v, err := hujsonParse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSONC: %w", err)
	}

	var root any
	if err := json.Unmarshal(v, &root); err != nil {
		return nil, fmt.Errorf("failed to decode JSONC: %w", err)
	}
	return root, nil
}

// Get returns the value addressed by pointer within the JSONC document.
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
	return gojson.Marshal(root)
}

// Remove deletes the value addressed by pointer and returns the
// re-encoded document. The second return reports whether anything was
// removed; removing an absent path re-encodes the document unchanged.
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

	out, err := gojson.Marshal(root)
	if err != nil {
		return nil, false, err
	}
	return out, ok, nil
}

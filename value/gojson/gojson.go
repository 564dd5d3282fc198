// Package gojson adapts the value trees produced by encoding/json
// (map[string]any objects, []any arrays) to the value.Adapter capability
// set.
//
// This is the representation of choice when comment or format
// preservation is not required.
package gojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/alekece/json-toolkit/value"
)

// Adapter implements value.Adapter for encoding/json any-trees.
// The handle type is any; object handles are map[string]any and array
// handles are []any.
type Adapter struct{}

// Ensure Adapter implements the value.Adapter interface.
var _ value.Adapter[any] = Adapter{}

// Kind classifies a value. Go values outside the encoding/json vocabulary
// (typed structs, channels, ...) are opaque scalars: the accessor only
// needs to know they cannot hold children.
func (Adapter) Kind(v any) value.Kind {
	switch v := v.(type) {
	case nil:
		return value.Null
	case bool:
		return value.Bool
	case string:
		return value.String
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return value.Number
	case json.Number:
		return value.Number
	case map[string]any:
		return value.Object
	case []any:
		return value.Array
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Bool:
			return value.Bool
		case reflect.String:
			return value.String
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return value.Number
		default:
			return value.Null
		}
	}
}

func (Adapter) Key(obj any, key string) (any, bool) {
	v, ok := obj.(map[string]any)[key]
	return v, ok
}

func (Adapter) SetKey(obj any, key string, v any) any {
	obj.(map[string]any)[key] = v
	return obj
}

func (Adapter) DeleteKey(obj any, key string) any {
	delete(obj.(map[string]any), key)
	return obj
}

func (Adapter) Len(arr any) int {
	return len(arr.([]any))
}

func (Adapter) Index(arr any, i int) any {
	return arr.([]any)[i]
}

func (Adapter) SetIndex(arr any, i int, v any) any {
	s := arr.([]any)
	s[i] = v
	return s
}

func (Adapter) Append(arr any, v any) any {
	return append(arr.([]any), v)
}

func (Adapter) Remove(arr any, i int) any {
	s := arr.([]any)
	return append(s[:i], s[i+1:]...)
}

func (Adapter) NewObject() any {
	return map[string]any{}
}

func (Adapter) NewArray() any {
	return []any{}
}

// Parse decodes JSON data into an any-tree. Empty or whitespace-only
// input decodes to nil (a JSON null).
func Parse(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var root any
	if err := json.Unmarshal(trimmed, &root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return root, nil
}

// Marshal encodes an any-tree as indented JSON with a trailing newline.
func Marshal(root any) ([]byte, error) {
	b, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(b, '\n'), nil
}

// Clone creates a deep copy of an any-tree, recursively copying nested
// maps and slices. Scalars are returned as-is.
func Clone(v any) any {
	switch v := v.(type) {
	case map[string]any:
		dst := make(map[string]any, len(v))
		for k, elem := range v {
			dst[k] = Clone(elem)
		}
		return dst
	case []any:
		dst := make([]any, len(v))
		for i, elem := range v {
			dst[i] = Clone(elem)
		}
		return dst
	default:
		return v
	}
}

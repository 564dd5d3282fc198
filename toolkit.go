// Package jsontoolkit exposes the common manipulation operations expected
// from a JSON pointer (RFC 6901) across several JSON value
// representations.
//
// The package-level functions operate on encoding/json any-trees
// (map[string]any objects, []any arrays) for the common case:
//
//	var root any = map[string]any{"foo": "bar", "zoo": map[string]any{"id": 1}}
//
//	jsontoolkit.Insert(&root, "/zoo/new_field", "new_value")
//	id, ok := jsontoolkit.Get(root, "/zoo/id")
//
// Other representations plug in through the value.Adapter capability set;
// see value/gojson and value/goyaml for the bundled adapters, and
// format/jsonc and format/toml for byte-level editing of configuration
// files.
package jsontoolkit

import (
	"fmt"

	"github.com/alekece/json-toolkit/decoder"
	"github.com/alekece/json-toolkit/jsonptr"
	"github.com/alekece/json-toolkit/value"
	"github.com/alekece/json-toolkit/value/gojson"
)

// NotFoundError is returned by Decode when the pointee does not exist.
type NotFoundError struct {
	Pointer string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no value at %q", e.Pointer)
}

// Get looks up the value addressed by pointer within an any-tree.
// Absence, including malformed pointer text, reports false.
func Get(root any, pointer string) (any, bool) {
	ptr, err := jsonptr.Parse(pointer)
	if err != nil {
		return nil, false
	}
	return value.Get[any](gojson.Adapter{}, root, ptr)
}

// Insert stores v at the location addressed by pointer, creating missing
// intermediate containers, and returns the value previously stored there,
// if any. The root pointer replaces *root wholesale.
func Insert(root *any, pointer string, v any) (prev any, replaced bool, err error) {
	ptr, err := jsonptr.Parse(pointer)
	if err != nil {
		return nil, false, err
	}
	return value.Insert[any](gojson.Adapter{}, root, ptr, v)
}

// InsertKey inserts v under key directly in obj, which must be a
// map[string]any, and returns the previous value under that key, if any.
func InsertKey(obj any, key string, v any) (prev any, replaced bool, err error) {
	return value.InsertKey[any](gojson.Adapter{}, obj, key, v)
}

// Remove deletes the value addressed by pointer and returns it. Removing
// an absent path reports false without error.
func Remove(root *any, pointer string) (removed any, ok bool, err error) {
	ptr, err := jsonptr.Parse(pointer)
	if err != nil {
		return nil, false, err
	}
	return value.Remove[any](gojson.Adapter{}, root, ptr)
}

// Decode locates the value addressed by pointer and decodes it into
// target using the JSON decoder. A missing pointee yields a
// *NotFoundError.
func Decode(root any, pointer string, target any) error {
	ptr, err := jsonptr.Parse(pointer)
	if err != nil {
		return err
	}

	v, ok := value.Get[any](gojson.Adapter{}, root, ptr)
	if !ok {
		return &NotFoundError{Pointer: ptr.String()}
	}
	return decoder.JSON(v, target)
}

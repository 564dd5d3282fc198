// Package value provides pointer-addressed access to arbitrary JSON value
// representations.
//
// The accessor functions (Get, Insert, Remove) are written once against
// the Adapter capability set and reused across concrete representations
// without modification. Adapter implementations exist for encoding/json
// any-trees (value/gojson) and yaml.v3 node trees (value/goyaml).
package value

// Kind classifies a JSON value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Container reports whether the kind can hold child values.
func (k Kind) Container() bool {
	return k == Array || k == Object
}

// Adapter is the capability set a JSON value representation must expose
// for pointer-addressed traversal and mutation.
//
// T is a handle to one node of the value tree. Mutating methods return
// the updated handle; callers must store it back in place of the one they
// passed in, since representations backed by Go slices produce a new
// handle on append.
//
// The accessor only calls object methods on handles whose Kind is Object,
// and array methods on handles whose Kind is Array, always with indices
// in range. Implementations may panic on any other use.
type Adapter[T any] interface {
	// Kind classifies the value behind the handle.
	Kind(v T) Kind

	// Key returns the value under key, if present.
	Key(obj T, key string) (T, bool)
	// SetKey inserts or overwrites key and returns the updated object.
	// Key order is preserved for representations that track it.
	SetKey(obj T, key string, v T) T
	// DeleteKey removes key and returns the updated object.
	DeleteKey(obj T, key string) T

	// Len returns the number of array elements.
	Len(arr T) int
	// Index returns the element at index i.
	Index(arr T, i int) T
	// SetIndex overwrites the element at index i and returns the updated array.
	SetIndex(arr T, i int, v T) T
	// Append adds an element at the end and returns the updated array.
	Append(arr T, v T) T
	// Remove deletes the element at index i, shifting subsequent elements
	// to close the gap, and returns the updated array.
	Remove(arr T, i int) T

	// NewObject and NewArray construct empty containers, used to create
	// missing intermediate structure during Insert.
	NewObject() T
	NewArray() T
}

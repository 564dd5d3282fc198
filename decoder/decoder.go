// Package decoder provides value-to-struct decoding functions.
//
// A decoder turns a pointee value (typically a map[string]any subtree
// located with a JSON pointer) into a typed Go struct.
package decoder

// Func is a function that decodes a value into a target struct.
// Implementations should handle type conversion as needed.
type Func func(data any, target any) error

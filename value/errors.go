package value

import "fmt"

// InvalidTraversalError is returned when a write operation crosses a
// value that cannot hold children, or otherwise addresses the tree in a
// structurally impossible way.
type InvalidTraversalError struct {
	Pointer string // canonical form of the pointer being applied
	Token   string // token at which traversal failed; empty for root misuse
	Reason  string
}

func (e *InvalidTraversalError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid traversal at %q: %s", e.Pointer, e.Reason)
	}
	return fmt.Sprintf("invalid traversal at %q, token %q: %s", e.Pointer, e.Token, e.Reason)
}

// IndexOutOfBoundsError is returned when an array insert addresses an
// index beyond the permitted range. Inserting at Length appends; anything
// past that is an error.
type IndexOutOfBoundsError struct {
	Pointer string
	Index   int
	Length  int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("array index %d out of range [0, %d] at %q", e.Index, e.Length, e.Pointer)
}

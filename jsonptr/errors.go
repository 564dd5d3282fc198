package jsonptr

import "fmt"

// InvalidPointerError is returned when a textual pointer is malformed.
type InvalidPointerError struct {
	Pointer string
	Reason  string
}

func (e *InvalidPointerError) Error() string {
	return fmt.Sprintf("invalid JSON pointer %q: %s", e.Pointer, e.Reason)
}

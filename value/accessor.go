package value

import (
	"strconv"

	"github.com/alekece/json-toolkit/jsonptr"
)

// indexToken interprets a reference token as an array index. Per RFC 6901
// a token is index-shaped iff it consists solely of decimal digits, or is
// the literal "-" denoting the position one past the last element.
func indexToken(token string) (index int, pastEnd bool, ok bool) {
	if token == "-" {
		return 0, true, true
	}
	if token == "" {
		return 0, false, false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false, false
		}
	}
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, false, false
	}
	return index, false, true
}

// Get looks up the value addressed by ptr, walking objects by key and
// arrays by index. The root pointer returns root itself.
//
// Absence is not an error: a missing key, an out-of-range or non-numeric
// array index, the "-" token, or a path descending through a scalar all
// report false.
func Get[T any](a Adapter[T], root T, ptr jsonptr.Pointer) (T, bool) {
	var zero T

	node := root
	for _, token := range ptr.Tokens() {
		switch a.Kind(node) {
		case Object:
			child, ok := a.Key(node, token)
			if !ok {
				return zero, false
			}
			node = child

		case Array:
			i, pastEnd, ok := indexToken(token)
			if !ok || pastEnd || i >= a.Len(node) {
				// "-" is valid syntax but never resolves to an element.
				return zero, false
			}
			node = a.Index(node, i)

		default:
			return zero, false
		}
	}

	return node, true
}

// Insert stores v at the location addressed by ptr and returns the value
// previously stored there, if any.
//
// The root pointer replaces *root wholesale and returns the prior root.
// Missing intermediate structure is created on the way down: an array if
// the next token is index-shaped, an object otherwise. An existing scalar
// in an intermediate position cannot hold children and yields an
// *InvalidTraversalError. At the final token, objects insert or overwrite
// the key; arrays overwrite in-bounds indices, append at index == length
// or "-", and yield an *IndexOutOfBoundsError past that.
//
// A failed Insert leaves the tree unmodified: intermediate containers are
// built detached and only linked in once the descent has succeeded.
func Insert[T any](a Adapter[T], root *T, ptr jsonptr.Pointer, v T) (prev T, replaced bool, err error) {
	var zero T

	if ptr.IsRoot() {
		prev = *root
		*root = v
		return prev, true, nil
	}

	node, prev, replaced, err := insertTokens(a, *root, ptr, ptr.Tokens(), v)
	if err != nil {
		return zero, false, err
	}
	*root = node
	return prev, replaced, nil
}

func insertTokens[T any](a Adapter[T], node T, ptr jsonptr.Pointer, tokens []string, v T) (T, T, bool, error) {
	var zero T

	token, rest := tokens[0], tokens[1:]
	switch a.Kind(node) {
	case Object:
		if len(rest) == 0 {
			prev, replaced := a.Key(node, token)
			return a.SetKey(node, token, v), prev, replaced, nil
		}

		child, ok := a.Key(node, token)
		if !ok {
			child = newContainer(a, rest[0])
		}
		child, prev, replaced, err := insertTokens(a, child, ptr, rest, v)
		if err != nil {
			return zero, zero, false, err
		}
		return a.SetKey(node, token, child), prev, replaced, nil

	case Array:
		i, pastEnd, ok := indexToken(token)
		if !ok {
			return zero, zero, false, &InvalidTraversalError{
				Pointer: ptr.String(),
				Token:   token,
				Reason:  "array index expected",
			}
		}

		length := a.Len(node)
		if pastEnd || i == length {
			if len(rest) == 0 {
				return a.Append(node, v), zero, false, nil
			}
			child := newContainer(a, rest[0])
			child, prev, replaced, err := insertTokens(a, child, ptr, rest, v)
			if err != nil {
				return zero, zero, false, err
			}
			return a.Append(node, child), prev, replaced, nil
		}
		if i > length {
			return zero, zero, false, &IndexOutOfBoundsError{
				Pointer: ptr.String(),
				Index:   i,
				Length:  length,
			}
		}

		if len(rest) == 0 {
			prev := a.Index(node, i)
			return a.SetIndex(node, i, v), prev, true, nil
		}
		child, prev, replaced, err := insertTokens(a, a.Index(node, i), ptr, rest, v)
		if err != nil {
			return zero, zero, false, err
		}
		return a.SetIndex(node, i, child), prev, replaced, nil

	default:
		return zero, zero, false, &InvalidTraversalError{
			Pointer: ptr.String(),
			Token:   token,
			Reason:  "cannot descend into " + a.Kind(node).String(),
		}
	}
}

// newContainer creates the intermediate container for a missing node:
// an array when the upcoming token is index-shaped, an object otherwise.
// This is a heuristic over the token's syntactic shape, not a guarantee
// about the caller's intent.
func newContainer[T any](a Adapter[T], nextToken string) T {
	if _, _, ok := indexToken(nextToken); ok {
		return a.NewArray()
	}
	return a.NewObject()
}

// InsertKey inserts v under key directly in obj, bypassing pointer
// traversal for the common single-level case. The previous value under
// that key is returned, if any. obj must be an object.
func InsertKey[T any](a Adapter[T], obj T, key string, v T) (prev T, replaced bool, err error) {
	var zero T

	if kind := a.Kind(obj); kind != Object {
		return zero, false, &InvalidTraversalError{
			Pointer: jsonptr.Build(key).String(),
			Token:   key,
			Reason:  "cannot insert key into " + kind.String(),
		}
	}

	prev, replaced = a.Key(obj, key)
	a.SetKey(obj, key, v)
	return prev, replaced, nil
}

// Remove deletes the value addressed by ptr and returns it.
//
// The root pointer is invalid for Remove: the root cannot be detached
// from itself. Navigation to the parent of the target follows Get
// semantics, so a missing intermediate reports false rather than an
// error. At the final token, a present object key or in-bounds array
// index is removed (array removal shifts subsequent elements, preserving
// order); anything else reports false. A failed Remove leaves the tree
// unmodified.
func Remove[T any](a Adapter[T], root *T, ptr jsonptr.Pointer) (removed T, ok bool, err error) {
	var zero T

	if ptr.IsRoot() {
		return zero, false, &InvalidTraversalError{
			Pointer: "",
			Reason:  "cannot remove the root value",
		}
	}

	node, removed, ok := removeTokens(a, *root, ptr.Tokens())
	if !ok {
		return zero, false, nil
	}
	*root = node
	return removed, true, nil
}

func removeTokens[T any](a Adapter[T], node T, tokens []string) (T, T, bool) {
	var zero T

	token, rest := tokens[0], tokens[1:]
	switch a.Kind(node) {
	case Object:
		child, exists := a.Key(node, token)
		if !exists {
			return zero, zero, false
		}
		if len(rest) == 0 {
			return a.DeleteKey(node, token), child, true
		}
		child, removed, ok := removeTokens(a, child, rest)
		if !ok {
			return zero, zero, false
		}
		return a.SetKey(node, token, child), removed, true

	case Array:
		i, pastEnd, okIdx := indexToken(token)
		if !okIdx || pastEnd || i >= a.Len(node) {
			return zero, zero, false
		}
		if len(rest) == 0 {
			removed := a.Index(node, i)
			return a.Remove(node, i), removed, true
		}
		child, removed, ok := removeTokens(a, a.Index(node, i), rest)
		if !ok {
			return zero, zero, false
		}
		return a.SetIndex(node, i, child), removed, true

	default:
		return zero, zero, false
	}
}

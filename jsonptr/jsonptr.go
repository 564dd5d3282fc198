// Package jsonptr implements JSON Pointer (RFC 6901).
//
// A Pointer identifies a specific value within a JSON document as an
// ordered sequence of reference tokens. Pointers are parsed once, are
// immutable afterwards, and re-encode to their canonical textual form.
//
// Reference: https://tools.ietf.org/html/rfc6901
package jsonptr

import (
	"fmt"
	"strconv"
	"strings"
)

// Escape escapes special characters in a key for use in JSON Pointer.
// Per RFC 6901:
//   - "~" is encoded as "~0"
//   - "/" is encoded as "~1"
func Escape(key string) string {
	// Order matters: escape ~ first, then /
	key = strings.ReplaceAll(key, "~", "~0")
	key = strings.ReplaceAll(key, "/", "~1")
	return key
}

// Unescape reverses the escaping applied by Escape.
// Per RFC 6901:
//   - "~1" is decoded as "/"
//   - "~0" is decoded as "~"
//
// A "~" followed by any character other than "0" or "1" is not an escape
// sequence defined by the RFC and passes through literally.
func Unescape(key string) string {
	// Order matters: unescape / first, then ~. Decoding ~0 first would
	// corrupt keys containing a literal "~1" substring.
	key = strings.ReplaceAll(key, "~1", "/")
	key = strings.ReplaceAll(key, "~0", "~")
	return key
}

// Pointer is a parsed JSON Pointer: an ordered sequence of decoded
// reference tokens. The zero value is the root pointer, which refers to
// the whole document.
//
// Pointers provide a strong ordering (see Compare): pointers sort by
// ascending depth, and pointers of the same depth sort by their textual
// form.
type Pointer struct {
	tokens []string
}

// Root returns the root pointer (zero reference tokens).
func Root() Pointer {
	return Pointer{}
}

// Parse parses the textual form of a JSON Pointer.
//
// The empty string is the root pointer. Any other input must start with
// "/", otherwise an *InvalidPointerError is returned. Each "/"-separated
// segment is unescaped ("~1" -> "/", then "~0" -> "~") and becomes one
// reference token.
//
// Examples:
//
//	Parse("")                  -> root pointer
//	Parse("/server/port")      -> ["server", "port"]
//	Parse("/a~1b/~0c")         -> ["a/b", "~c"]
//	Parse("server/port")       -> *InvalidPointerError
func Parse(pointer string) (Pointer, error) {
	if pointer == "" {
		return Pointer{}, nil
	}

	if !strings.HasPrefix(pointer, "/") {
		return Pointer{}, &InvalidPointerError{Pointer: pointer, Reason: "must start with '/' or be empty"}
	}

	parts := strings.Split(pointer[1:], "/")
	tokens := make([]string, len(parts))
	for i, part := range parts {
		tokens[i] = Unescape(part)
	}

	return Pointer{tokens: tokens}, nil
}

// MustParse is like Parse but panics on invalid input. It is intended for
// pointer literals in tests and package-level variables.
func MustParse(pointer string) Pointer {
	p, err := Parse(pointer)
	if err != nil {
		panic(fmt.Sprintf("jsonptr: %v", err))
	}
	return p
}

// Build constructs a Pointer from a sequence of keys. Keys can be strings
// or integers (for array indices). Keys are taken verbatim as decoded
// tokens; no unescaping is applied.
//
// Examples:
//
//	Build("server", "port")      -> /server/port
//	Build("servers", 0, "name")  -> /servers/0/name
//	Build("paths", "/api/users") -> /paths/~1api~1users
func Build(keys ...any) Pointer {
	if len(keys) == 0 {
		return Pointer{}
	}

	tokens := make([]string, len(keys))
	for i, key := range keys {
		switch v := key.(type) {
		case string:
			tokens[i] = v
		case int:
			tokens[i] = strconv.Itoa(v)
		case int64:
			tokens[i] = strconv.FormatInt(v, 10)
		case uint:
			tokens[i] = strconv.FormatUint(uint64(v), 10)
		case uint64:
			tokens[i] = strconv.FormatUint(v, 10)
		default:
			tokens[i] = fmt.Sprint(v)
		}
	}

	return Pointer{tokens: tokens}
}

// IsRoot reports whether the pointer refers to the document root.
func (p Pointer) IsRoot() bool {
	return len(p.tokens) == 0
}

// String returns the canonical RFC 6901 textual form of the pointer.
// The root pointer encodes as the empty string.
//
// For any pointer p, Parse(p.String()) yields a pointer equal to p.
func (p Pointer) String() string {
	if len(p.tokens) == 0 {
		return ""
	}

	var b strings.Builder
	for _, token := range p.tokens {
		b.WriteByte('/')
		b.WriteString(Escape(token))
	}
	return b.String()
}

// Tokens returns a copy of the decoded reference tokens.
func (p Pointer) Tokens() []string {
	if p.tokens == nil {
		return nil
	}
	tokens := make([]string, len(p.tokens))
	copy(tokens, p.tokens)
	return tokens
}

// Depth returns the number of reference tokens in the pointer.
func (p Pointer) Depth() int {
	return len(p.tokens)
}

// Key returns the last reference token of the pointer, also called the
// JSON key. The root pointer has no tokens and reports false.
//
// Example:
//
//	MustParse("/nested/key").Key()  -> "key", true
//	Root().Key()                    -> "", false
func (p Pointer) Key() (string, bool) {
	if len(p.tokens) == 0 {
		return "", false
	}
	return p.tokens[len(p.tokens)-1], true
}

// Parent returns the pointer with the last reference token removed.
// The root pointer is the only pointer without a parent.
func (p Pointer) Parent() (Pointer, bool) {
	if len(p.tokens) == 0 {
		return Pointer{}, false
	}
	return Pointer{tokens: p.tokens[:len(p.tokens)-1]}, true
}

// Ancestors returns the pointer followed by all of its parents, ending at
// the root pointer.
//
// Example:
//
//	MustParse("/foo/bar").Ancestors()  -> [/foo/bar, /foo, root]
func (p Pointer) Ancestors() []Pointer {
	ancestors := make([]Pointer, 0, len(p.tokens)+1)
	for i := len(p.tokens); i >= 0; i-- {
		ancestors = append(ancestors, Pointer{tokens: p.tokens[:i]})
	}
	return ancestors
}

// IsAncestorOf reports whether p is an ancestor of other. A pointer is an
// ancestor of itself.
func (p Pointer) IsAncestorOf(other Pointer) bool {
	if len(p.tokens) > len(other.tokens) {
		return false
	}
	for i, token := range p.tokens {
		if other.tokens[i] != token {
			return false
		}
	}
	return true
}

// IsParentOf reports whether p is the direct parent of other.
func (p Pointer) IsParentOf(other Pointer) bool {
	parent, ok := other.Parent()
	return ok && p.Equal(parent)
}

// IsSiblingOf reports whether p and other are distinct pointers sharing
// the same parent. The root pointer has no parent and thus no siblings.
func (p Pointer) IsSiblingOf(other Pointer) bool {
	pp, ok := p.Parent()
	if !ok {
		return false
	}
	op, ok := other.Parent()
	if !ok {
		return false
	}
	return !p.Equal(other) && pp.Equal(op)
}

// Join returns a pointer addressing other relative to p, i.e. the tokens
// of p followed by the tokens of other.
func (p Pointer) Join(other Pointer) Pointer {
	return p.Append(other.tokens...)
}

// Append returns a pointer with the given decoded tokens appended.
// The receiver is not modified.
func (p Pointer) Append(tokens ...string) Pointer {
	if len(tokens) == 0 {
		return p
	}
	joined := make([]string, 0, len(p.tokens)+len(tokens))
	joined = append(joined, p.tokens...)
	joined = append(joined, tokens...)
	return Pointer{tokens: joined}
}

// Equal reports whether two pointers have the same reference tokens.
func (p Pointer) Equal(other Pointer) bool {
	if len(p.tokens) != len(other.tokens) {
		return false
	}
	for i, token := range p.tokens {
		if other.tokens[i] != token {
			return false
		}
	}
	return true
}

// Compare orders pointers by ascending depth; pointers of the same depth
// are ordered by their canonical textual form. It returns -1, 0 or 1.
func (p Pointer) Compare(other Pointer) int {
	switch {
	case len(p.tokens) < len(other.tokens):
		return -1
	case len(p.tokens) > len(other.tokens):
		return 1
	}
	return strings.Compare(p.String(), other.String())
}

// MarshalText encodes the pointer in its canonical textual form.
func (p Pointer) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a pointer from its textual form.
func (p *Pointer) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

package shortid

import "strings"

// ID is a generated identifier as an opaque value.
//
// IDs compare, hash and order exactly like their underlying strings, so they
// work with ==, < and as map keys. Any string converts with ID(s).
type ID string

// NewID returns a random ID
func NewID() ID {
	return ID(New())
}

// String returns the ID as a plain string
func (id ID) String() string {
	return string(id)
}

// Compare returns -1, 0 or 1 by lexicographic comparison.
// For ordered IDs this only approximates time order.
func (id ID) Compare(other ID) int {
	return strings.Compare(string(id), string(other))
}

// IsZero reports whether the ID is empty
func (id ID) IsZero() bool {
	return id == ""
}

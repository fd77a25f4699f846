package domain

import "unique"

// InternedString wraps a unique.Handle[string]. Module IDs and dependency
// requests repeat across thousands of cached modules; interning keeps one
// copy of each distinct value in memory.
type InternedString struct {
	h unique.Handle[string]
}

// Intern creates an InternedString from a string.
func Intern(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value. The zero InternedString
// renders as the empty string.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// Handle returns the underlying unique.Handle[string].
func (is InternedString) Handle() unique.Handle[string] {
	return is.h
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}

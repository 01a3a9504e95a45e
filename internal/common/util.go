package common

import "strings"

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// passwords from memory once they have been handed to the identity provider.
// A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NormalizeEmail trims surrounding whitespace and lower-cases an address so
// that lookups keyed by email are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

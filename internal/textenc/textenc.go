// Package textenc renders byte sequences as URL-safe text.
//
// The encoding is base64url (RFC 4648 section 5) without padding. Only the
// encoding direction is provided.
package textenc

import (
	"encoding/base64"
	"strings"
)

// Alphabet is the 64-symbol URL-safe set, in 6-bit value order
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var encoding = base64.RawURLEncoding

// Encode returns the padding-free base64url rendering of b
func Encode(b []byte) string {
	return encoding.EncodeToString(b)
}

// EncodedLen returns the number of symbols Encode produces for n bytes,
// which is ceil(n*8/6).
func EncodedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return encoding.EncodedLen(n)
}

// IsURLSafe reports whether every character of s belongs to Alphabet
func IsURLSafe(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}
	return true
}

// Package shortid generates short, URL-safe, random or time-ordered IDs.
//
// IDs are base64url strings without padding, so they only contain
// A-Z, a-z, 0-9, '-' and '_':
//
//	id := shortid.New()        // 14 characters, 10 random bytes
//	oid := shortid.NewOrdered() // 14 characters, 8-byte timestamp + 2 random bytes
//
// Custom sizes are available through NewWithBytes (1 to 32 bytes) and
// NewOrderedWithBytes (8 to 32 bytes). An ID of n bytes is EncodedLen(n)
// characters long.
//
// # Ordered IDs
//
// Ordered IDs start with the current time in microseconds since the Unix
// epoch, written as 8 big-endian bytes. Lexicographic order of the encoded
// strings is not guaranteed to match chronological order: the alphabet's
// ASCII order differs from its 6-bit value order. Do not sort by string
// comparison when exact time order matters.
//
// # Restricted builds
//
// Building with the tag shortid_noclock links a clock that is always
// unavailable. NewOrdered, NewOrderedWithBytes, MustNewOrderedWithBytes and
// NewOrderedID are not compiled in that mode, and the ordered methods of a
// default Generator return ErrClockUnavailable.
//
// # Randomness
//
// Random bytes come from crypto/rand. A failing entropy source is treated
// as fatal and causes a panic; no ID is ever produced from partial or
// predictable bytes.
package shortid

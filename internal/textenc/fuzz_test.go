package textenc

import (
	"strings"
	"testing"
)

// FuzzEncode checks length and alphabet invariants for arbitrary input
func FuzzEncode(f *testing.F) {
	seeds := [][]byte{
		{},
		{0x00},
		{0xff, 0xff},
		{0xfb, 0xff, 0xbf},
		[]byte("foobar"),
		make([]byte, 32),
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		s := Encode(data)

		if len(s) != EncodedLen(len(data)) {
			t.Fatalf("length %d, expected %d for %d bytes", len(s), EncodedLen(len(data)), len(data))
		}

		if strings.ContainsAny(s, "+/=") {
			t.Fatalf("unsafe character in %q", s)
		}

		if !IsURLSafe(s) {
			t.Fatalf("symbol outside alphabet in %q", s)
		}

		if s != Encode(data) {
			t.Fatal("encoding is not deterministic")
		}
	})
}

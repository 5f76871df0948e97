package base64

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type encPair struct {
	name   string
	enc    *Encoding
	stdlib *base64.Encoding
}

var encs = []encPair{
	{"StdEncoding", StdEncoding, base64.StdEncoding},
	{"RawStdEncoding", RawStdEncoding, base64.RawStdEncoding},
	{"URLEncoding", URLEncoding, base64.URLEncoding},
	{"RawURLEncoding", RawURLEncoding, base64.RawURLEncoding},
}

// TestEncodeStdlib tests Encode against the stdlib. The encode
// side of every variant is alphabet-for-alphabet identical to
// encoding/base64.
func TestEncodeStdlib(t *testing.T) {
	for _, e := range encs {
		t.Run(e.name, func(t *testing.T) {
			testStdlibEncode(t, e)
		})
	}
}

func testStdlibEncode(t *testing.T, p encPair) {
	e := p.enc
	stdlib := p.stdlib

	src := make([]byte, 4096)
	want := make([]byte, stdlib.EncodedLen(len(src)))
	got := make([]byte, e.EncodedLen(len(src)))
	if len(want) != len(got) {
		t.Fatalf("expected %d, got %d", len(want), len(got))
	}
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		stdlib.Encode(want, src[:i])
		want := want[:stdlib.EncodedLen(i)]

		e.Encode(got, src[:i])
		got := got[:e.EncodedLen(i)]
		if !bytes.Equal(want, got) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, got))
		}
	}
}

// TestDecodeStdlib tests DecodeString against the stdlib on
// stdlib-produced text. URLEncoding is excluded: its decoder is
// the lenient one, which treats pad symbols differently from
// RFC 4648 (see the package docs).
func TestDecodeStdlib(t *testing.T) {
	for _, e := range encs {
		if e.enc == URLEncoding {
			continue
		}
		t.Run(e.name, func(t *testing.T) {
			testStdlibDecode(t, e)
		})
	}
}

func testStdlibDecode(t *testing.T, p encPair) {
	src := make([]byte, 1024)
	if _, err := rand.Read(src); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		text := p.stdlib.EncodeToString(src[:i])

		want, err := p.stdlib.DecodeString(text)
		if err != nil {
			t.Fatalf("#%d: stdlib: %v", i, err)
		}
		got, err := p.enc.DecodeString(text)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if !bytes.Equal(want, got) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, got))
		}
	}
}

// TestEncodedLenStdlib tests EncodedLen against the stdlib for
// every variant.
func TestEncodedLenStdlib(t *testing.T) {
	for _, e := range encs {
		for n := 0; n <= 128; n++ {
			want := e.stdlib.EncodedLen(n)
			got := e.enc.EncodedLen(n)
			if want != got {
				t.Fatalf("%s: #%d: expected %d, got %d", e.name, n, want, got)
			}
		}
	}
}

// TestAlphabetTables tests that the symbol table and the
// classification table are inverses, and that every non-symbol
// unit is classified as whitespace, padding, or invalid.
func TestAlphabetTables(t *testing.T) {
	for _, p := range encs {
		e := p.enc
		for i := 0; i < 64; i++ {
			c := e.symbols[i]
			if e.codes[c] != byte(i) {
				t.Fatalf("%s: #%d: %q maps to %#x", p.name, i, c, e.codes[c])
			}
		}
		for i := 0; i < 256; i++ {
			switch c := e.codes[i]; {
			case c < 64:
				if e.symbols[c] != byte(i) {
					t.Fatalf("%s: %q: symbol mismatch", p.name, byte(i))
				}
			case c == codeWS:
				if !strings.ContainsRune(whitespace, rune(i)) {
					t.Fatalf("%s: %q classified as whitespace", p.name, byte(i))
				}
			case c == codePad:
				if !strings.ContainsRune(decodePads, rune(i)) {
					t.Fatalf("%s: %q classified as padding", p.name, byte(i))
				}
			case c != codeBad:
				t.Fatalf("%s: %q: unknown code %#x", p.name, byte(i), c)
			}
		}
	}
}

var (
	sinkN  int
	sinkOK bool
)

func BenchmarkEncode(b *testing.B) {
	src := make([]byte, 1024)
	if _, err := rand.Read(src); err != nil {
		b.Fatal(err)
	}
	dst := make([]byte, RawURLEncoding.EncodedLen(len(src)))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RawURLEncoding.Encode(dst, src)
	}
}

func BenchmarkDecode(b *testing.B) {
	src := make([]byte, 1024)
	if _, err := rand.Read(src); err != nil {
		b.Fatal(err)
	}
	text := []byte(RawURLEncoding.EncodeToString(src))
	dst := make([]byte, len(src))
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, err := RawURLEncoding.Decode(dst, text)
		if err != nil {
			b.Fatal(err)
		}
		sinkN = n
	}
}

func BenchmarkValid(b *testing.B) {
	src := make([]byte, 1024)
	if _, err := rand.Read(src); err != nil {
		b.Fatal(err)
	}
	text := []byte(RawURLEncoding.EncodeToString(src))
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkOK = RawURLEncoding.Valid(text)
	}
}

package base64

import (
	"encoding/base64"
	"errors"
)

const (
	StdPadding = base64.StdPadding // canonical padding '='
	AltPadding = '.'               // historical URL-safe padding
	NoPadding  = base64.NoPadding  // no padding
)

// ErrCorrupt is returned when the encoded input violates the
// alphabet, padding, or length rules.
var ErrCorrupt = errors.New("base64: input is corrupt")

// ErrShortDst is returned by Decode when the destination buffer
// is too small to hold the decoded output.
var ErrShortDst = errors.New("base64: destination buffer too small")

// StdEncoding is the classic Base64 encoding.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
//
// Its decoder requires whole 4-symbol blocks, with up to two
// trailing pad symbols, as in RFC 4648.
var StdEncoding = newEncoding(stdAlphabet, StdPadding, true)

// RawStdEncoding is the unpadded classic Base64 encoding.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
//
// Its decoder treats padding as optional.
var RawStdEncoding = newEncoding(stdAlphabet, NoPadding, false)

// URLEncoding is the padded base64url encoding.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	-_
//
// Padding applies to encoding only; its decoder is identical to
// RawURLEncoding's. See the package docs before choosing it over
// RawURLEncoding.
var URLEncoding = newEncoding(urlAlphabet, StdPadding, false)

// RawURLEncoding is the unpadded base64url encoding, the usual
// choice for URLs and filenames.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	-_
var RawURLEncoding = newEncoding(urlAlphabet, NoPadding, false)

// Encoding is a particular Base64 encoding.
//
// See the package docs for a comparison with encoding/base64.
type Encoding struct {
	symbols [64]byte
	codes   [256]byte
	padChar rune
	// wholeBlocks requires the decoded text, pads included, to
	// be a multiple of four units, as in classic Base64.
	wholeBlocks bool
}

// WithPadding returns an identical Encoding that uses the
// specified padding character when encoding, or none if r is
// NoPadding.
//
// The padding character must be one the decoder recognizes:
// StdPadding or AltPadding.
func (e Encoding) WithPadding(r rune) *Encoding {
	switch {
	case r == NoPadding:
	case r < 0 || r > 0xff || e.codes[r] != codePad:
		panic("base64: invalid padding")
	}
	e.padChar = r
	return &e
}

// EncodedLen returns the size in text units of the Base64
// encoding of n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	if e.padChar == NoPadding {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
func (e *Encoding) Encode(dst, src []byte) {
	encode(e, dst, src)
}

// EncodeToString encodes src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	encode(e, dst, src)
	return string(dst)
}

// Valid reports whether src is well formed for e.
//
// It inspects counts only and never produces bytes.
func (e *Encoding) Valid(src []byte) bool {
	_, ok := validate(e, src)
	return ok
}

// DecodedLen returns the exact number of bytes src decodes to,
// and whether src is well formed for e.
//
// Unlike encoding/base64, the length is computed from the
// contents of src, not its length, so it accounts for whitespace
// and optional padding and can be used to size the destination
// passed to Decode.
func (e *Encoding) DecodedLen(src []byte) (int, bool) {
	return validate(e, src)
}

// Decode decodes src into dst and returns the number of bytes
// written.
//
// Decode re-derives the validity of src before writing: it
// returns ErrCorrupt if src is not well formed and ErrShortDst
// if dst cannot hold the decoded output. On error the contents
// of dst are unspecified.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	return decode(e, dst, src)
}

// DecodeString decodes s.
//
// It returns ErrCorrupt if s is not well formed.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	n, ok := validate(e, src)
	if !ok {
		return nil, ErrCorrupt
	}
	dst := make([]byte, n)
	if _, err := decode(e, dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

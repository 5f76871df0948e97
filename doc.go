// Package base64 implements the URL-safe Base64 text codec used
// for binary data carried inside URLs and filenames, along with
// the classic RFC 4648 alphabet over the same engine.
//
// The package is built around validating text without decoding
// it: Valid and DecodedLen classify input and compute the exact
// decoded byte count from symbol counts alone, so callers can
// size a destination buffer before paying for the transform.
//
// Comparison to encoding/base64
//
// This package is not a drop-in replacement for encoding/base64.
//
// Unlike encoding/base64, the decoder ignores the whitespace
// characters ' ', '\t', '\r', and '\n' at any position.
//
// Unlike encoding/base64, padding is optional when decoding the
// URL-safe variants: the final group may simply be shorter than
// four symbols. When padding is present, the decoder accepts '.'
// as well as '=', for compatibility with URL-safe variants that
// historically padded with a different character.
//
// Unlike encoding/base64, a pad symbol accepted by the lenient
// decoder cancels one byte of the final group rather than
// completing it, and a full block followed by padding is
// rejected. Text meant to round-trip through this package should
// be produced with RawURLEncoding; URLEncoding's padded output
// is for consumers that require whole 4-symbol blocks, such as
// StdEncoding here or classic RFC 4648 decoders.
//
// Unlike encoding/base64, decoding never returns partial
// results: invalid input reports ErrCorrupt and the destination
// contents are unspecified.
package base64

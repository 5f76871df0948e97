package base64

// The wide API mirrors the byte-oriented one over UTF-16 code
// units, for callers whose text already lives in that
// representation. Both run the same engine; only the unit width
// differs.

// ValidUTF16 reports whether src is well formed for e.
func (e *Encoding) ValidUTF16(src []uint16) bool {
	_, ok := validate(e, src)
	return ok
}

// DecodedLenUTF16 returns the exact number of bytes src decodes
// to, and whether src is well formed for e.
func (e *Encoding) DecodedLenUTF16(src []uint16) (int, bool) {
	return validate(e, src)
}

// DecodeUTF16 decodes src into dst and returns the number of
// bytes written.
//
// It shares Decode's error contract.
func (e *Encoding) DecodeUTF16(dst []byte, src []uint16) (int, error) {
	return decode(e, dst, src)
}

// EncodeUTF16 encodes src, writing EncodedLen(len(src)) code
// units to dst.
func (e *Encoding) EncodeUTF16(dst []uint16, src []byte) {
	encode(e, dst, src)
}

// EncodeToUTF16 encodes src.
func (e *Encoding) EncodeToUTF16(src []byte) []uint16 {
	dst := make([]uint16, e.EncodedLen(len(src)))
	encode(e, dst, src)
	return dst
}

package base64

// encode converts src three bytes at a time into four symbols,
// writing EncodedLen(len(src)) units to dst.
func encode[U codeUnit](e *Encoding, dst []U, src []byte) {
	n := 0
	for len(src) >= 3 {
		v := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
		dst[n+0] = U(e.symbols[v>>18&0x3f])
		dst[n+1] = U(e.symbols[v>>12&0x3f])
		dst[n+2] = U(e.symbols[v>>6&0x3f])
		dst[n+3] = U(e.symbols[v&0x3f])
		src = src[3:]
		n += 4
	}

	switch len(src) {
	case 2:
		v := uint32(src[0])<<16 | uint32(src[1])<<8
		dst[n+2] = U(e.symbols[v>>6&0x3f])
		dst[n+1] = U(e.symbols[v>>12&0x3f])
		dst[n+0] = U(e.symbols[v>>18&0x3f])
		if e.padChar != NoPadding {
			dst[n+3] = U(e.padChar)
		}
	case 1:
		v := uint32(src[0]) << 16
		dst[n+1] = U(e.symbols[v>>12&0x3f])
		dst[n+0] = U(e.symbols[v>>18&0x3f])
		if e.padChar != NoPadding {
			dst[n+3] = U(e.padChar)
			dst[n+2] = U(e.padChar)
		}
	}
}

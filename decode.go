package base64

// decode validates src and writes its decoded bytes to dst.
func decode[U codeUnit](e *Encoding, dst []byte, src []U) (int, error) {
	dn, ok := validate(e, src)
	if !ok {
		return 0, ErrCorrupt
	}
	if len(dst) < dn {
		return 0, ErrShortDst
	}

	var (
		group [4]byte
		k, n  int
	)
	for _, u := range src {
		c := unitCode(e, u)
		if c >= 64 {
			// Whitespace or trailing padding; validate already
			// rejected everything else.
			continue
		}
		group[k] = c
		k++
		if k == 4 {
			v := uint32(group[0])<<18 |
				uint32(group[1])<<12 |
				uint32(group[2])<<6 |
				uint32(group[3])
			dst[n+0] = byte(v >> 16)
			dst[n+1] = byte(v >> 8)
			dst[n+2] = byte(v)
			k = 0
			n += 3
		}
	}

	// Final partial group of two or three symbols. It emits
	// exactly the bytes the length rule accounted for; unused
	// low-order bits, and bytes cancelled by padding, are
	// discarded.
	switch dn - n {
	case 2:
		dst[n+1] = group[1]<<4 | group[2]>>2
		fallthrough
	case 1:
		dst[n+0] = group[0]<<2 | group[1]>>4
	}
	return dn, nil
}

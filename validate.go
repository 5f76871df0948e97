package base64

// validate scans src and returns the exact number of bytes it
// decodes to under e's rules, computed from counts alone.
//
// ok is false on any alphabet violation, any pad symbol outside
// the trailing pad run, or a failure of the block arithmetic.
func validate[U codeUnit](e *Encoding, src []U) (n int, ok bool) {
	var syms, pads int
	for _, u := range src {
		switch c := unitCode(e, u); c {
		case codeWS:
		case codePad:
			pads++
		case codeBad:
			return 0, false
		default:
			if pads > 0 {
				// Padding may only trail the symbols.
				return 0, false
			}
			syms++
		}
	}
	if pads > 2 {
		return 0, false
	}
	if e.wholeBlocks {
		return wholeBlockLen(syms, pads)
	}
	return optionalPadLen(syms, pads)
}

// optionalPadLen applies the block arithmetic for encodings
// whose padding is optional on decode: the final group may be
// two or three symbols with no padding at all, and each trailing
// pad symbol cancels one byte of the final group.
func optionalPadLen(syms, pads int) (int, bool) {
	whole, rem := syms/4, syms%4
	switch rem {
	case 1:
		// A single leftover symbol cannot decode to a byte.
		return 0, false
	case 0:
		// Padding must not appear when the symbols already land
		// on a block boundary.
		if pads != 0 {
			return 0, false
		}
		return whole * 3, true
	default: // 2 or 3
		if pads == rem || rem-pads == 1 {
			return 0, false
		}
		return whole*3 + rem - 1 - pads, true
	}
}

// wholeBlockLen applies the classic rule: pads included, the
// input must be a multiple of four units.
func wholeBlockLen(syms, pads int) (int, bool) {
	n := syms + pads
	if n%4 != 0 {
		return 0, false
	}
	return n/4*3 - pads, true
}

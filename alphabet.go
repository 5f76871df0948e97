package base64

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"-_"
)

// whitespace units are ignored at any position while validating
// and decoding. They never contribute to length accounting.
const whitespace = " \t\r\n"

// decodePads are the symbols the decoder accepts as padding. The
// first is canonical for encoding; the second exists for
// compatibility with URL-safe variants that historically padded
// with a different character.
const decodePads = string(StdPadding) + string(AltPadding)

// codeUnit is the textual unit the engine operates on: narrow
// 8-bit code units or wide UTF-16 code units. The algorithm is
// identical for both.
type codeUnit interface {
	~uint8 | ~uint16
}

// Reserved classification codes. Values below 64 are the 6-bit
// symbol values themselves.
const (
	codeWS  = 0xfd // ignorable whitespace
	codePad = 0xfe // pad symbol
	codeBad = 0xff // not in the alphabet
)

// unitCode classifies a single code unit for e. Units outside
// the 8-bit range are never alphabet symbols, pads, or
// whitespace.
func unitCode[U codeUnit](e *Encoding, u U) byte {
	if uint32(u) > 0xff {
		return codeBad
	}
	return e.codes[u]
}

func newEncoding(alphabet string, padChar rune, wholeBlocks bool) *Encoding {
	if len(alphabet) != 64 {
		panic("base64: alphabet is not 64 symbols")
	}
	e := &Encoding{padChar: padChar, wholeBlocks: wholeBlocks}
	for i := range e.codes {
		e.codes[i] = codeBad
	}
	for i := 0; i < len(whitespace); i++ {
		e.codes[whitespace[i]] = codeWS
	}
	for i := 0; i < len(decodePads); i++ {
		e.codes[decodePads[i]] = codePad
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		// The 64 symbols must be pairwise distinct and disjoint
		// from the whitespace and pad sets.
		if e.codes[c] != codeBad {
			panic("base64: alphabet symbol repeated or reserved")
		}
		e.symbols[i] = c
		e.codes[c] = byte(i)
	}
	return e
}

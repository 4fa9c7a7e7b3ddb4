package ezid

import "math/bits"

const (
	// charset holds the 62 symbols used for digit encoding; digit value is
	// the symbol's index.
	charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	base = uint64(len(charset))
)

// dec is the decoding map for the base62 charset.
var dec [256]byte

func init() {
	for i := 0; i < len(dec); i++ {
		dec[i] = 0xFF
	}
	for i := 0; i < len(charset); i++ {
		dec[charset[i]] = byte(i)
	}
}

// encode62 writes the base62 representation of the 128-bit value hi:lo into
// dst, most-significant digit first, left-padded with '0'. Digits above
// len(dst) are discarded; for the 6-digit timestamp field that wraparound
// first occurs in December 3769.
func encode62(hi, lo uint64, dst []byte) {
	for i := len(dst) - 1; i >= 0; i-- {
		qhi, r := hi/base, hi%base
		qlo, rem := bits.Div64(r, lo, base)
		dst[i] = charset[rem]
		hi, lo = qhi, qlo
	}
}

// decode62 interprets src as base62 digits and returns the 128-bit value
// hi:lo. Values wider than 128 bits wrap, mirroring the encoder's modular
// policy. A byte outside the charset yields ok == false.
func decode62(src []byte) (hi, lo uint64, ok bool) {
	for _, c := range src {
		d := dec[c]
		if d == 0xFF {
			return 0, 0, false
		}
		carryHi, carryLo := bits.Mul64(lo, base)
		var carry uint64
		lo, carry = bits.Add64(carryLo, uint64(d), 0)
		hi = hi*base + carryHi + carry
	}
	return hi, lo, true
}

// Package base62 implements the positional numeral encoding used to derive
// short codes from database identifiers.
package base62

import "fmt"

// Alphabet is ordered digits, lowercase, uppercase. The order is fixed:
// changing it would remap every previously issued short code.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const base = uint64(len(Alphabet))

// Encode converts n to its base62 representation. Zero encodes to "0".
// Distinct inputs always produce distinct outputs.
func Encode(n uint64) string {
	if n == 0 {
		return string(Alphabet[0])
	}

	// uint64 max needs 11 base62 digits.
	var buf [11]byte
	i := len(buf)

	for n > 0 {
		i--
		buf[i] = Alphabet[n%base]
		n /= base
	}

	return string(buf[i:])
}

// Decode is the inverse of Encode. It is not used on the request path, but
// keeps the encoding verifiable round-trip.
func Decode(s string) (uint64, error) {
	const op = "base62.Decode"

	if s == "" {
		return 0, fmt.Errorf("%s: empty string", op)
	}

	var n uint64
	for _, c := range []byte(s) {
		v, ok := digitValue(c)
		if !ok {
			return 0, fmt.Errorf("%s: invalid character %q", op, c)
		}
		n = n*base + v
	}

	return n, nil
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 36, true
	}
	return 0, false
}

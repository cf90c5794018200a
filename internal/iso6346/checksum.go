// Package iso6346 computes, generates and validates ISO 6346 container numbers.
package iso6346

// Alphabet is the ordered set of letters allowed in the owner code and
// category identifier.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	OwnerLen    = 3
	PrefixLen   = 4 // owner code + category identifier
	SerialLen   = 6
	NumberLen   = PrefixLen + SerialLen + 1
	maxSerial   = 999999
	checkModulo = 11
)

// Letter values skip multiples of 11 (11, 22, 33).
var letterWeights = [len(Alphabet)]int{
	10, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 23, 24, 25, 26, 27, 28, 29, 30,
	31, 32, 34, 35, 36, 37, 38,
}

// CheckDigit returns the ISO 6346 check digit for the given parts.
//
// Lengths are not checked. Letters outside Alphabet in the first four
// positions and non-digits afterwards contribute nothing to the sum, so
// malformed input still yields a value in [0, 9].
func CheckDigit(owner, category, serial string) int {
	chars := owner + category + serial

	// factor is 2^i reduced mod 11, so overlong input cannot overflow.
	sum, factor := 0, 1
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if i < PrefixLen {
			if idx := letterIndex(c); idx >= 0 {
				sum += letterWeights[idx] * factor
			}
		} else if c >= '0' && c <= '9' {
			sum += int(c-'0') * factor
		}
		sum %= checkModulo
		factor = factor * 2 % checkModulo
	}

	if sum == 10 {
		return 0
	}
	return sum
}

func letterIndex(c byte) int {
	if c < 'A' || c > 'Z' {
		return -1
	}
	return int(c - 'A')
}

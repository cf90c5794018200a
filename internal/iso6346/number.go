package iso6346

import (
	"fmt"
	"regexp"
)

var numberRe = regexp.MustCompile(`^[A-Z]{4}[0-9]{7}$`)

// Number is a container number split into its parts.
type Number struct {
	Owner      string
	Category   string
	Serial     string
	CheckDigit int
}

// String renders the canonical 11-character form, e.g. "CSQU3054383".
func (n Number) String() string {
	return fmt.Sprintf("%s%s%s%d", n.Owner, n.Category, n.Serial, n.CheckDigit)
}

// Expected returns the check digit the other parts call for.
func (n Number) Expected() int {
	return CheckDigit(n.Owner, n.Category, n.Serial)
}

// Parse splits a candidate that has the shape of a container number (four
// uppercase letters, seven digits). It does not verify the check digit.
func Parse(candidate string) (Number, bool) {
	if !numberRe.MatchString(candidate) {
		return Number{}, false
	}
	return Number{
		Owner:      candidate[:OwnerLen],
		Category:   candidate[OwnerLen:PrefixLen],
		Serial:     candidate[PrefixLen : PrefixLen+SerialLen],
		CheckDigit: int(candidate[NumberLen-1] - '0'),
	}, true
}

// IsValid reports whether candidate is a well-formed container number whose
// last digit matches its check digit. It never panics.
func IsValid(candidate string) bool {
	n, ok := Parse(candidate)
	if !ok {
		return false
	}
	return n.Expected() == n.CheckDigit
}

var categoryNames = map[string]string{
	"U": "freight container",
	"J": "detachable freight container-related equipment",
	"Z": "trailer or chassis",
}

// CategoryName describes one of the standard equipment categories.
// Other letters return "" but are still accepted everywhere else.
func CategoryName(category string) string {
	return categoryNames[category]
}

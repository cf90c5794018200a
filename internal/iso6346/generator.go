package iso6346

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// PrefixConfig pins letters of the four-letter prefix. Index 0-2 is the
// owner code, index 3 the category identifier. An entry is used only when it
// is a single letter A-Z; anything else leaves the position random.
type PrefixConfig [PrefixLen]string

// Fixed returns the pinned letter at position i, if any.
func (p PrefixConfig) Fixed(i int) (byte, bool) {
	if i < 0 || i >= PrefixLen || len(p[i]) != 1 {
		return 0, false
	}
	c := p[i][0]
	if letterIndex(c) < 0 {
		return 0, false
	}
	return c, true
}

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator creates random container numbers with valid check digits.
// It is safe for concurrent use when its Source is.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src, or from the
// process-wide math/rand/v2 source when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate returns a container number using the default generator.
func Generate(prefix PrefixConfig) string {
	return defaultGenerator.Generate(prefix)
}

// Generate returns a new 11-character container number honouring the
// fixed positions of prefix.
func (g *Generator) Generate(prefix PrefixConfig) string {
	return g.Number(prefix).String()
}

// Number is Generate without the final formatting.
func (g *Generator) Number(prefix PrefixConfig) Number {
	var b strings.Builder
	b.Grow(PrefixLen)
	for i := 0; i < PrefixLen; i++ {
		if c, ok := prefix.Fixed(i); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(Alphabet[g.src.IntN(len(Alphabet))])
	}
	letters := b.String()

	n := Number{
		Owner:    letters[:OwnerLen],
		Category: letters[OwnerLen:],
		Serial:   fmt.Sprintf("%0*d", SerialLen, g.src.IntN(maxSerial+1)),
	}
	n.CheckDigit = n.Expected()
	return n
}

package iso6346

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestGenerate_RoundTrip(t *testing.T) {
	g := seeded(1)
	for i := 0; i < 5000; i++ {
		n := g.Generate(PrefixConfig{})
		require.Len(t, n, NumberLen)
		require.True(t, IsValid(n), n)
	}
}

func TestGenerate_PackageLevel(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := Generate(PrefixConfig{"C", "S", "Q", "U"})
		require.True(t, IsValid(n), n)
		assert.Equal(t, "CSQU", n[:PrefixLen])
	}
}

func TestGenerate_FixedPositions(t *testing.T) {
	testCases := []struct {
		name   string
		prefix PrefixConfig
		fixed  map[int]byte
	}{
		{"owner only", PrefixConfig{"M", "S", "K", ""}, map[int]byte{0: 'M', 1: 'S', 2: 'K'}},
		{"category only", PrefixConfig{"", "", "", "J"}, map[int]byte{3: 'J'}},
		{"sparse", PrefixConfig{"", "X", "", "Z"}, map[int]byte{1: 'X', 3: 'Z'}},
		{"invalid entries ignored", PrefixConfig{"ab", "1", "c", "U"}, map[int]byte{3: 'U'}},
	}

	g := seeded(7)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.prefix
			for i := 0; i < 500; i++ {
				n := g.Generate(tc.prefix)
				require.True(t, IsValid(n), n)
				for pos, want := range tc.fixed {
					assert.Equal(t, want, n[pos], "%s position %d", n, pos)
				}
			}
			assert.Equal(t, before, tc.prefix)
		})
	}
}

func TestPrefixConfig_Fixed(t *testing.T) {
	p := PrefixConfig{"A", "", "z", "Q"}

	c, ok := p.Fixed(0)
	assert.True(t, ok)
	assert.Equal(t, byte('A'), c)

	_, ok = p.Fixed(1)
	assert.False(t, ok)
	_, ok = p.Fixed(2)
	assert.False(t, ok)
	_, ok = p.Fixed(-1)
	assert.False(t, ok)
	_, ok = p.Fixed(PrefixLen)
	assert.False(t, ok)
}

func TestGenerate_SameSeedSameSequence(t *testing.T) {
	a, b := seeded(42), seeded(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Generate(PrefixConfig{}), b.Generate(PrefixConfig{}))
	}
}

func TestGenerate_LetterUniformity(t *testing.T) {
	const perLetter = 1000
	samples := perLetter * len(Alphabet)

	g := NewGenerator(nil)
	var counts [PrefixLen][len(Alphabet)]int
	for i := 0; i < samples; i++ {
		n := g.Generate(PrefixConfig{})
		for pos := 0; pos < PrefixLen; pos++ {
			counts[pos][n[pos]-'A']++
		}
	}

	// 25 degrees of freedom; 70 is far beyond the 0.001 critical value (52.6).
	for pos := 0; pos < PrefixLen; pos++ {
		chi := 0.0
		for _, c := range counts[pos] {
			d := float64(c - perLetter)
			chi += d * d / perLetter
		}
		assert.Less(t, chi, 70.0, "position %d", pos)
	}
}

func TestGenerate_SerialRange(t *testing.T) {
	// A source pinned at the top of its range must still give six digits.
	g := NewGenerator(maxSource{})
	n := g.Number(PrefixConfig{})
	assert.Equal(t, "ZZZZ", n.Owner+n.Category)
	assert.Equal(t, "999999", n.Serial)

	g = NewGenerator(zeroSource{})
	n = g.Number(PrefixConfig{})
	assert.Equal(t, "AAAA", n.Owner+n.Category)
	assert.Equal(t, "000000", n.Serial)
	assert.True(t, IsValid(n.String()))
}

func TestGenerate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if n := Generate(PrefixConfig{}); !IsValid(n) {
					t.Errorf("invalid number %s", n)
					return
				}
			}
		}()
	}
	wg.Wait()
}

type maxSource struct{}

func (maxSource) IntN(n int) int { return n - 1 }

type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

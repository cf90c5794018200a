package core

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/example/containerno/internal/iso6346"
)

const (
	minBatch        = 1
	defaultMaxBatch = 10
	generateRetries = 6
)

var (
	ownerRe    = regexp.MustCompile(`^[A-Z]{3}$`)
	categoryRe = regexp.MustCompile(`^[A-Z]$`)
	serialRe   = regexp.MustCompile(`^[0-9]{6}$`)
)

// Service implements generation and validation of container numbers.
type Service struct {
	gen      NumberGenerator
	maxBatch int
}

// NewService builds a Service. maxBatch <= 0 falls back to 10.
func NewService(gen NumberGenerator, maxBatch int) *Service {
	if gen == nil {
		gen = iso6346.NewGenerator(nil)
	}
	if maxBatch <= 0 {
		maxBatch = defaultMaxBatch
	}
	return &Service{gen: gen, maxBatch: maxBatch}
}

// MaxBatch is the largest Count Generate accepts.
func (s *Service) MaxBatch() int { return s.maxBatch }

// Generate returns in.Count distinct container numbers honouring in.Prefix.
func (s *Service) Generate(ctx context.Context, in GenerateRequest) ([]Container, error) {
	count := in.Count
	if count == 0 {
		count = minBatch
	}
	if count < minBatch || count > s.maxBatch {
		return nil, ErrInvalidCount
	}
	prefix := NormalizePrefix(in.Prefix)

	out := make([]Container, 0, count)
	seen := make(map[string]struct{}, count)
	for len(out) < count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Redraw on the rare duplicate inside one batch.
		var n iso6346.Number
		ok := false
		for i := 0; i < generateRetries; i++ {
			n = s.gen.Number(prefix)
			if _, dup := seen[n.String()]; !dup {
				ok = true
				break
			}
			log.Debug().Str("number", n.String()).Msg("duplicate in batch, redrawing")
		}
		if !ok {
			return nil, ErrExhausted
		}
		seen[n.String()] = struct{}{}
		out = append(out, containerFrom(n))
	}
	return out, nil
}

// Validate checks a candidate number. Surrounding whitespace is ignored;
// everything else must already be canonical (uppercase, no separators).
func (s *Service) Validate(_ context.Context, code string) Validation {
	code = strings.TrimSpace(code)
	v := Validation{Input: code}

	n, ok := iso6346.Parse(code)
	if !ok {
		v.Reason = ReasonFormat
		return v
	}
	claimed, expected := n.CheckDigit, n.Expected()
	v.OwnerCode = n.Owner
	v.Category = n.Category
	v.CategoryName = iso6346.CategoryName(n.Category)
	v.Serial = n.Serial
	v.CheckDigit = &claimed
	v.Expected = &expected
	v.Valid = claimed == expected
	if !v.Valid {
		v.Reason = ReasonCheckDigit
	}
	return v
}

// CheckDigit computes the check digit for well-formed parts. Unlike
// iso6346.CheckDigit it refuses malformed input.
func (s *Service) CheckDigit(_ context.Context, owner, category, serial string) (Container, error) {
	if !ownerRe.MatchString(owner) || !categoryRe.MatchString(category) || !serialRe.MatchString(serial) {
		return Container{}, ErrInvalidParts
	}
	n := iso6346.Number{Owner: owner, Category: category, Serial: serial}
	n.CheckDigit = n.Expected()
	return containerFrom(n), nil
}

// NormalizePrefix turns free-form per-position input into a PrefixConfig:
// each entry is uppercased and stripped of anything but A-Z, and kept only
// if exactly one letter remains. Entries past the fourth are ignored.
func NormalizePrefix(entries []string) iso6346.PrefixConfig {
	var p iso6346.PrefixConfig
	for i, e := range entries {
		if i >= iso6346.PrefixLen {
			break
		}
		letters := strings.Map(func(r rune) rune {
			if r >= 'A' && r <= 'Z' {
				return r
			}
			return -1
		}, strings.ToUpper(e))
		if len(letters) == 1 {
			p[i] = letters
		}
	}
	return p
}

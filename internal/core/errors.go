package core

import "errors"

var (
	// Operational errors for control flow.
	ErrInvalidCount = errors.New("count out of range")
	ErrInvalidParts = errors.New("owner code, category or serial malformed")
	ErrExhausted    = errors.New("could not produce enough distinct numbers")
	ErrRateLimited  = errors.New("rate limited")
)

// IsInvalidInput reports whether err was caused by caller input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidCount) || errors.Is(err, ErrInvalidParts)
}

// IsExhausted reports whether err indicates the prefix space ran dry.
func IsExhausted(err error) bool { return errors.Is(err, ErrExhausted) }

package core

import "github.com/example/containerno/internal/iso6346"

// Container is one generated container number with its parts broken out.
type Container struct {
	Number       string `json:"number"`
	OwnerCode    string `json:"owner_code"`
	Category     string `json:"category"`
	CategoryName string `json:"category_name,omitempty"`
	Serial       string `json:"serial"`
	CheckDigit   int    `json:"check_digit"`
}

// GenerateRequest is the input to generate a batch of numbers.
type GenerateRequest struct {
	Count  int      `json:"count"`            // 0 means 1
	Prefix []string `json:"prefix,omitempty"` // Optional fixed letters by position
}

// Validation reports the outcome of checking a candidate number.
// Reason is empty when Valid, otherwise "format" or "check_digit".
type Validation struct {
	Input        string `json:"input"`
	Valid        bool   `json:"valid"`
	Reason       string `json:"reason,omitempty"`
	OwnerCode    string `json:"owner_code,omitempty"`
	Category     string `json:"category,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	Serial       string `json:"serial,omitempty"`
	CheckDigit   *int   `json:"check_digit,omitempty"`
	Expected     *int   `json:"expected_check_digit,omitempty"`
}

const (
	ReasonFormat     = "format"
	ReasonCheckDigit = "check_digit"
)

// NumberGenerator creates container numbers for a prefix configuration.
type NumberGenerator interface {
	Number(prefix iso6346.PrefixConfig) iso6346.Number
}

func containerFrom(n iso6346.Number) Container {
	return Container{
		Number:       n.String(),
		OwnerCode:    n.Owner,
		Category:     n.Category,
		CategoryName: iso6346.CategoryName(n.Category),
		Serial:       n.Serial,
		CheckDigit:   n.CheckDigit,
	}
}

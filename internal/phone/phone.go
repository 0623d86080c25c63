// Package phone canonicalizes Kenyan mobile numbers. It is the single source
// of truth for phone formatting, used by form validation and SMS dispatch.
package phone

import (
	"regexp"
	"strings"
)

const countryPrefix = "254"

// subscriberPattern matches a Kenyan mobile subscriber number after the
// country or trunk prefix is removed: a 7 or 1 prefix digit plus 8 digits.
var subscriberPattern = regexp.MustCompile(`^(?:254|0)?([17]\d{8})$`)

var nonDigits = regexp.MustCompile(`\D`)

// Result is the outcome of normalization.
type Result struct {
	IsValid   bool
	Formatted string // canonical "+254#########" form, empty when invalid
}

// Normalize accepts the three colloquial formats — "+254712345678",
// "254712345678" and "0712345678" (spaces and punctuation ignored) — and
// returns the canonical international form. The canonical form is a fixed
// point: normalizing it again yields the same value.
func Normalize(raw string) Result {
	digits := nonDigits.ReplaceAllString(strings.TrimSpace(raw), "")

	m := subscriberPattern.FindStringSubmatch(digits)
	if m == nil {
		return Result{IsValid: false}
	}

	return Result{
		IsValid:   true,
		Formatted: "+" + countryPrefix + m[1],
	}
}

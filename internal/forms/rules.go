package forms

import "regexp"

// RuleKind is the closed set of validation rule kinds. Rules are built by the
// constructors below and evaluated by a single interpreter in Validate, so a
// field declaration can only express known checks.
type RuleKind int

const (
	KindRequired RuleKind = iota
	KindMinLength
	KindMaxLength
	KindPattern
	KindCustom
	KindPhone
)

// Rule is one declarative validation step for a field.
type Rule struct {
	kind    RuleKind
	length  int
	pattern *regexp.Regexp
	message string
	check   func(value string) string // returns "" when valid
}

// Required fails with "<label> is required" when the trimmed value is empty.
func Required() Rule {
	return Rule{kind: KindRequired}
}

// MinLength fails when the value is shorter than n characters.
func MinLength(n int) Rule {
	return Rule{kind: KindMinLength, length: n}
}

// MaxLength fails when the value is longer than n characters.
func MaxLength(n int) Rule {
	return Rule{kind: KindMaxLength, length: n}
}

// Pattern fails with the given message when the value does not match re.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{kind: KindPattern, pattern: re, message: message}
}

// Custom runs an arbitrary predicate; check returns the error message or "".
func Custom(check func(value string) string) Rule {
	return Rule{kind: KindCustom, check: check}
}

// Phone normalizes the value as a Kenyan mobile number after the generic
// rules pass; the canonical form replaces the raw value in FormattedValues.
func Phone() Rule {
	return Rule{kind: KindPhone}
}

// Field pairs a form field with its rules. Label is the human-readable name
// used in generated messages ("Phone number is required").
type Field struct {
	Name  string
	Label string
	Rules []Rule
}

// NewField declares a field with its validation rules.
func NewField(name, label string, rules ...Rule) Field {
	return Field{Name: name, Label: label, Rules: rules}
}

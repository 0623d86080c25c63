// Package forms validates raw form input against declarative per-field rules
// before any booking policy runs. Fields are evaluated independently; the
// aggregate result carries one message per invalid field.
package forms

import (
	"fmt"
	"strings"

	"github.com/premium-barber/booking-service/internal/phone"
)

// Result is the aggregate outcome of validating a form.
type Result struct {
	IsValid         bool
	Errors          map[string]string // field name -> first failing message
	FormattedValues map[string]string // raw values, phones in canonical form
}

// Validator validates value maps against a fixed field declaration.
type Validator struct {
	fields []Field
}

// NewValidator builds a validator over the declared fields.
func NewValidator(fields ...Field) *Validator {
	return &Validator{fields: fields}
}

// Validate runs every field's rules against values. Per field the order is
// required, then lengths, then pattern, then custom, then phone
// normalization; an empty optional field short-circuits as valid. The first
// failing rule produces the field's message and stops that field only.
func (v *Validator) Validate(values map[string]string) Result {
	result := Result{
		IsValid:         true,
		Errors:          make(map[string]string),
		FormattedValues: make(map[string]string, len(values)),
	}

	for name, value := range values {
		result.FormattedValues[name] = value
	}

	for _, field := range v.fields {
		if msg := v.validateField(field, values[field.Name], result.FormattedValues); msg != "" {
			result.Errors[field.Name] = msg
			result.IsValid = false
		}
	}

	return result
}

func (v *Validator) validateField(field Field, value string, formatted map[string]string) string {
	trimmed := strings.TrimSpace(value)
	required := false
	for _, rule := range field.Rules {
		if rule.kind == KindRequired {
			required = true
		}
	}

	if trimmed == "" {
		if required {
			return fmt.Sprintf("%s is required", field.Label)
		}
		// Optional and empty: the remaining rules do not apply.
		return ""
	}

	for _, rule := range field.Rules {
		if msg := v.applyRule(field, rule, value, formatted); msg != "" {
			return msg
		}
	}

	return ""
}

// applyRule is the single interpreter for all rule kinds.
func (v *Validator) applyRule(field Field, rule Rule, value string, formatted map[string]string) string {
	switch rule.kind {
	case KindRequired:
		// Handled up front so emptiness short-circuits the other rules.
		return ""

	case KindMinLength:
		if len(value) < rule.length {
			return fmt.Sprintf("%s must be at least %d characters", field.Label, rule.length)
		}

	case KindMaxLength:
		if len(value) > rule.length {
			return fmt.Sprintf("%s must be no more than %d characters", field.Label, rule.length)
		}

	case KindPattern:
		if !rule.pattern.MatchString(value) {
			if rule.message != "" {
				return rule.message
			}
			return fmt.Sprintf("%s format is invalid", field.Label)
		}

	case KindCustom:
		if msg := rule.check(value); msg != "" {
			return msg
		}

	case KindPhone:
		norm := phone.Normalize(value)
		if !norm.IsValid {
			return "Please enter a valid Kenyan phone number (07XXXXXXXX or +254XXXXXXXX)"
		}
		formatted[field.Name] = norm.Formatted
	}

	return ""
}

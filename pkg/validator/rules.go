// Package validator holds small, pure input checks and an ordered
// collection of field errors for re-rendering forms.
package validator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// IsNonEmptyString reports whether v is a string with at least one
// non-whitespace character. Non-string values are never accepted.
func IsNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// MaxIntegerDigits bounds the integer part of a parsed amount. Together
// with the two fraction digits it matches a NUMERIC(12,2) column.
const MaxIntegerDigits = 10

var (
	ErrNotNumber      = errors.New("validator: not a number")
	ErrNumberTooLarge = errors.New("validator: number too large")
)

var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

// ParseNumber parses a human-entered amount such as "85000",
// "85,000.50" or "$ 90000". Currency sign, thousands separators and
// surrounding spaces are ignored. Only plain non-negative amounts with
// at most two fraction digits are accepted: signs and exponents return
// ErrNotNumber, more than MaxIntegerDigits integer digits return
// ErrNumberTooLarge.
func ParseNumber(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrNotNumber
	}

	intPart, _, _ := strings.Cut(s, ".")
	if len(strings.TrimLeft(intPart, "0")) > MaxIntegerDigits {
		return decimal.Zero, ErrNumberTooLarge
	}
	return decimal.NewFromString(s)
}

// NumberMessage is the message for a field whose amount failed
// ParseNumber with err.
func NumberMessage(field string, err error) string {
	if errors.Is(err, ErrNumberTooLarge) {
		return Label(field) + " is too large"
	}
	return Label(field) + " must be a number"
}

// Label turns a field key into a display label: "title" -> "Title",
// "job_type" -> "Job Type".
func Label(field string) string {
	return titleCaser.String(strings.ReplaceAll(field, "_", " "))
}

// RequiredMessage is the message used for a missing required field.
func RequiredMessage(field string) string {
	return Label(field) + " is required"
}

// Required records RequiredMessage for every field in names whose value
// in values is missing or blank.
func Required(errs *ValidationErrors, values map[string]string, names ...string) {
	for _, name := range names {
		if !IsNonEmptyString(values[name]) {
			errs.Add(name, RequiredMessage(name))
		}
	}
}

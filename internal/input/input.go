// Package input turns user-entered text into finite numbers.
//
// Only standard decimal notation is accepted: an optional sign, digits and an
// optional fractional part. Exponents, hex floats, NaN and Inf are rejected so
// that what a user types is what gets calculated.
package input

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidNumber indicates text that is not a finite decimal number.
var ErrInvalidNumber = errors.New("input: not a valid number")

var standardNotation = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// FieldError reports which field failed to parse
type FieldError struct {
	Field string
	Text  string
}

func (e *FieldError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s: value is empty", e.Field)
	}
	return fmt.Sprintf("%s: %q is not a valid number", e.Field, e.Text)
}

func (e *FieldError) Unwrap() error { return ErrInvalidNumber }

// Field is a named piece of raw text to be parsed
type Field struct {
	Name string
	Text string
}

// ParseNumber parses text in standard decimal notation
func ParseNumber(field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	if !standardNotation.MatchString(s) {
		return 0, &FieldError{Field: field, Text: s}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &FieldError{Field: field, Text: s}
	}
	return v, nil
}

// ParseAll parses every field in order. When any field is invalid the
// returned error joins one *FieldError per invalid field.
func ParseAll(fields ...Field) ([]float64, error) {
	values := make([]float64, len(fields))
	var errs []error
	for i, f := range fields {
		v, err := ParseNumber(f.Name, f.Text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values[i] = v
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}

// IsNumericRune reports whether r can appear in standard decimal notation
func IsNumericRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+'
}

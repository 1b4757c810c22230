package sieve

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalText limits the float fallback to plain decimal spellings; Go
// literal forms such as "0x1p4" or "1_0" are rejected.
var decimalText = regexp.MustCompile(`^[+-]?[0-9]*\.?[0-9]*([eE][+-]?[0-9]+)?$`)

func validateIndex(n int) error {
	if n < 0 {
		return &InvalidInputError{Value: strconv.Itoa(n)}
	}
	return nil
}

// ParseIndex accepts the literal text of an index. Float text is accepted
// when its value is whole ("2.0"); the error message keeps raw verbatim.
func ParseIndex(raw string) (int, error) {
	text := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(text); err == nil {
		if n < 0 {
			return 0, &InvalidInputError{Value: raw}
		}
		return n, nil
	}
	if !decimalText.MatchString(text) {
		return 0, &InvalidInputError{Value: raw}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &InvalidInputError{Value: raw}
	}
	n, ok := wholeNumber(v)
	if !ok {
		return 0, &InvalidInputError{Value: raw}
	}
	return n, nil
}

// IndexFromFloat validates an already-decoded number, e.g. one read from JSON.
func IndexFromFloat(v float64) (int, error) {
	n, ok := wholeNumber(v)
	if !ok {
		return 0, &InvalidInputError{Value: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return n, nil
}

func wholeNumber(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v != math.Trunc(v) {
		return 0, false
	}
	if v >= float64(math.MaxInt) {
		return 0, false
	}
	return int(v), true
}

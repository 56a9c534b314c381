// Package validation holds the input sanitation rules shared by the core
// operations and the CLI boundary.
package validation

import (
	"strings"
)

// CleanText trims surrounding whitespace from a required text field.
func CleanText(v string) string {
	return strings.TrimSpace(v)
}

// NonNegative clamps NaN-free negative input to 0. Prices and deposits are
// never stored below zero.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

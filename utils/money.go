package utils

import "fmt"

// FormatBRL renders cents as a display amount, e.g. 9170 -> "R$ 91,70".
// Keeping money in integer cents makes the two-decimal rounding exact.
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
}

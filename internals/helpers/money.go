package helper

import (
	"fmt"
	"math"
)

// Round2 rounds to two decimal places (money).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders an amount the way the dashboard shows it ("200.00").
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

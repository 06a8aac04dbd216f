package wellness

import (
	"fmt"
	"math"
)

// ToTenths converts a display value (kg, hours) to the ×10 contract unit,
// rounding to the nearest integer. Negative input maps to zero.
func ToTenths(v float64) uint64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return uint64(math.Round(v * 10))
}

func FromTenths(n uint64) float64 {
	return float64(n) / 10
}

// FormatTenths renders a ×10 value with exactly one decimal using integer
// arithmetic so 705 is always "70.5".
func FormatTenths(n uint64) string {
	return fmt.Sprintf("%d.%d", n/10, n%10)
}

package runtimetools

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Abbreviate shortens n with an SI prefix, keeping at most digits decimals:
// 1234567 becomes "1.23M".
func Abbreviate(n float64, digits int) string {
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return humanize.Ftoa(n)
	}
	value, prefix := humanize.ComputeSI(n)
	return humanize.FtoaWithDigits(value, digits) + prefix
}

// Thousands formats n with comma separators: 1234567 becomes "1,234,567".
func Thousands(n int64) string {
	return humanize.Comma(n)
}

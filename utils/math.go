package utils

import "math"

func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func MaxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ClampInt restricts v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	return MaxInt(lo, MinInt(v, hi))
}

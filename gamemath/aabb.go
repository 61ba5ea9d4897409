// Package gamemath holds the small pure-math helpers shared by the
// simulation systems.
package gamemath

// Overlaps reports whether two axis-aligned boxes intersect. The test is
// half-open on both axes: boxes that only share an edge do not overlap.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// Clamp constrains v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

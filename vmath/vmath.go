package vmath

// ClampF limits v to [lo, hi], swapped bounds are reordered
func ClampF(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AbsF returns absolute value without the math import in hot paths
func AbsF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

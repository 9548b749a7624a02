package leetlist

import "math"

// mulSat multiplies non-negative a and b, saturating at math.MaxInt
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// addSat adds non-negative a and b, saturating at math.MaxInt
func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

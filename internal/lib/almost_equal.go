package lib

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// AlmostEqual reports whether a and b differ by less than tolerance relative to a.
// Two zero values are always equal
func AlmostEqual[T Number](a, b T, tolerance float64) bool {
	if a == 0 {
		return b == 0
	}
	return float64(Abs(a-b))/float64(Abs(a)) < tolerance
}

func Abs[T Number](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

package rectypoly

import "golang.org/x/exp/constraints"

// abs returns |v|.
func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// minMax returns a and b in ascending order.
func minMax[T constraints.Ordered](a, b T) (T, T) {
	if a > b {
		return b, a
	}

	return a, b
}

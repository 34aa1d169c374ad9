package streaks

import "math"

// CountStreaks counts the maximal runs of exactly length identical values in
// row. A run qualifies only when it is bounded by opposite values; the
// sequence boundaries act as implicit opposite values, so a run touching an
// edge still counts.
func CountStreaks(row []uint8, length int) int {
	if length < 1 || len(row) < length {
		return 0
	}
	count := 0
	run := 1
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i] == row[i-1] {
			run++
			continue
		}
		if run == length {
			count++
		}
		run = 1
	}
	return count
}

// Exact returns the closed-form probability that flips fair coin flips
// contain at least one streak of exactly length identical outcomes:
//
//	1 - (1 - 0.5^(length+1))^2 * (1 - 0.5^(length+2))^(flips-length-1)
//
// The two squared factors cover streaks touching a sequence boundary (one
// bounding opposite flip), the power factor covers interior start positions
// (two bounding opposite flips). For flips=100, length=7 this evaluates to
// about 0.1711.
func Exact(flips, length int) float64 {
	if length < 1 || flips < length {
		return 0
	}
	if flips == length {
		// The whole sequence must be identical.
		return math.Pow(0.5, float64(flips-1))
	}
	edge := 1 - math.Pow(0.5, float64(length+1))
	interior := 1 - math.Pow(0.5, float64(length+2))
	return 1 - edge*edge*math.Pow(interior, float64(flips-length-1))
}

package stats

// InsertionSort orders xs in place, non-decreasing and stable.
// Quadratic in the worst case; inputs are a few hundred scores at most.
func InsertionSort(xs []float64) {
	for i := 1; i < len(xs); i++ {
		key := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > key {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = key
	}
}

// SortedAscending returns a sorted copy of scores.
func SortedAscending(scores []float64) []float64 {
	out := make([]float64, len(scores))
	copy(out, scores)
	InsertionSort(out)
	return out
}

// Package stats computes descriptive statistics over score snapshots.
//
// Every function is pure: inputs are never modified and nothing fails. For an
// empty snapshot the aggregates are defined as 0; use Summary.Empty to tell
// "no data" apart from a genuine zero.
package stats

import "math"

// Summary holds the aggregates of one snapshot.
type Summary struct {
	Count  int
	Mean   float64
	Max    float64
	Min    float64
	StdDev float64
}

// Empty reports whether the summary was computed from no scores.
func (s Summary) Empty() bool { return s.Count == 0 }

// Summarize computes every aggregate of scores.
func Summarize(scores []float64) Summary {
	return Summary{
		Count:  len(scores),
		Mean:   Mean(scores),
		Max:    Max(scores),
		Min:    Min(scores),
		StdDev: PopulationStdDev(scores),
	}
}

// Mean returns the arithmetic mean.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Max returns the largest score.
func Max(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	m := scores[0]
	for _, s := range scores[1:] {
		if s > m {
			m = s
		}
	}
	return m
}

// Min returns the smallest score.
func Min(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	m := scores[0]
	for _, s := range scores[1:] {
		if s < m {
			m = s
		}
	}
	return m
}

// PopulationStdDev returns sqrt(Σ(x-mean)²/n). The divisor is n, not n-1.
func PopulationStdDev(scores []float64) float64 {
	n := len(scores)
	if n == 0 {
		return 0
	}
	mean := Mean(scores)
	var sq float64
	for _, s := range scores {
		d := s - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n))
}

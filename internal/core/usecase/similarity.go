package usecase

import "math"

// similarityEpsilon keeps the cosine denominator away from zero so degenerate
// vectors yield 0 instead of NaN.
const similarityEpsilon = 1e-8

// Cosine returns the cosine similarity of two vectors. Empty or
// length-mismatched inputs are a degenerate case, not an error: the result is
// exactly 0 so callers can treat "no comparable vector" as "no similarity".
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + similarityEpsilon)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

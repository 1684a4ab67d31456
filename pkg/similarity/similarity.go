package similarity

import "math"

// Cosine returns the cosine similarity of two vectors: dot(a,b)/(|a|·|b|).
// Vectors of unequal length are compared over the shorter one's indices.
// If either operand has zero norm the result is 0 rather than NaN, so the
// value always serializes cleanly to JSON.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Matrix computes the dense all-pairs similarity matrix between two vector
// sets. The result has shape (len(v1), len(v2)) with cell [i][j] holding
// Cosine(v1[i], v2[j]). Pass the same slice twice for a self-correlation.
func Matrix(v1, v2 [][]float64) [][]float64 {
	matrix := make([][]float64, len(v1))
	for i, a := range v1 {
		row := make([]float64, len(v2))
		for j, b := range v2 {
			row[j] = Cosine(a, b)
		}
		matrix[i] = row
	}
	return matrix
}

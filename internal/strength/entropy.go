package strength

import "math"

// Alphabet sizes credited per character class.
const (
	lowerPool  = 26
	upperPool  = 26
	digitPool  = 10
	symbolPool = 32
)

// PoolSize returns the brute-force alphabet size implied by c.
// It is never less than 1.
func (c Classes) PoolSize() int {
	pool := 0
	if c.Lower {
		pool += lowerPool
	}
	if c.Upper {
		pool += upperPool
	}
	if c.Digit {
		pool += digitPool
	}
	if c.Symbol {
		pool += symbolPool
	}
	if pool <= 0 {
		pool = 1
	}
	return pool
}

// PoolEntropy estimates the brute-force search space of s in bits:
// log2(pool) * len(s). The empty string has zero bits.
func PoolEntropy(s string) float64 {
	return poolEntropy(Classify(s), len(s))
}

func poolEntropy(c Classes, length int) float64 {
	return math.Log2(float64(c.PoolSize())) * float64(length)
}

// ShannonEntropy returns the empirical entropy of the byte distribution of s,
// scaled by its length. "aaaa" has zero bits; "abcd" has 8.
func ShannonEntropy(s string) float64 {
	if len(s) == 0 {
		return 0
	}

	var freq [256]int
	for i := 0; i < len(s); i++ {
		freq[s[i]]++
	}

	n := float64(len(s))
	h := 0.0
	for _, f := range freq {
		if f > 0 {
			p := float64(f) / n
			h -= p * math.Log2(p)
		}
	}
	return h * n
}

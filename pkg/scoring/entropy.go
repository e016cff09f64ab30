package scoring

import (
	"math"
	"strings"
)

// alphabetBits is log2(26), the information carried by one letter drawn
// uniformly from the English alphabet.
var alphabetBits = math.Log2(26)

// Entropy estimates the entropy of word in bits as the number of
// distinct characters (case-insensitive) multiplied by log2(26).
//
// This is a crude upper-bound style estimate, not a frequency-weighted
// measure: it only rewards character variety. Repeated letters add
// nothing, so "banana" scores the same as "ban".
func Entropy(word string) float64 {
	if word == "" {
		return 0
	}

	distinct := make(map[rune]struct{}, len(word))
	for _, r := range strings.ToLower(word) {
		distinct[r] = struct{}{}
	}
	return float64(len(distinct)) * alphabetBits
}

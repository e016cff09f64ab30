package scoring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordkit/wordkit/pkg/scoring"
)

func TestEntropy(t *testing.T) {
	log26 := math.Log2(26)

	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "all distinct letters",
			input:    "crab",
			expected: 4 * log26,
		},
		{
			name:     "repeated letters count once",
			input:    "banana",
			expected: 3 * log26,
		},
		{
			name:     "case insensitive",
			input:    "AaAa",
			expected: 1 * log26,
		},
		{
			name:     "empty string",
			input:    "",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoring.Entropy(tt.input), 1e-9)
		})
	}
}

func TestEntropyMonotonicInVariety(t *testing.T) {
	// More distinct letters never means less estimated entropy.
	assert.Less(t, scoring.Entropy("aaa"), scoring.Entropy("abc"))
	assert.Equal(t, scoring.Entropy("ban"), scoring.Entropy("banana"))
}

package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordkit/wordkit/pkg/scoring"
)

func TestSoundex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "classic example",
			input:    "Robert",
			expected: "R163",
		},
		{
			name:     "sound-alike shares code",
			input:    "Rupert",
			expected: "R163",
		},
		{
			name:     "consecutive duplicates collapse",
			input:    "apple",
			expected: "A140",
		},
		{
			name:     "duplicate across vowel still collapses",
			input:    "baobab",
			expected: "B100",
		},
		{
			name:     "short word pads with zeros",
			input:    "bee",
			expected: "B000",
		},
		{
			name:     "long word truncates to four",
			input:    "extraordinary",
			expected: "E236",
		},
		{
			name:     "lowercase first letter uppercased",
			input:    "tiger",
			expected: "T260",
		},
		{
			name:     "vowels h w y dropped",
			input:    "ahoy",
			expected: "A000",
		},
		{
			name:     "single letter",
			input:    "a",
			expected: "A000",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoring.Soundex(tt.input))
		})
	}
}

func TestSoundexCaseInsensitive(t *testing.T) {
	assert.Equal(t, scoring.Soundex("TIGER"), scoring.Soundex("tiger"))
	assert.Equal(t, scoring.Soundex("Tiger"), scoring.Soundex("tIgEr"))
}

func TestSoundexFixedLength(t *testing.T) {
	words := []string{"a", "be", "cat", "door", "eagle", "falcon", "gorilla", "xylophone"}
	for _, w := range words {
		assert.Len(t, scoring.Soundex(w), scoring.SoundexLength, "code for %q", w)
	}
}

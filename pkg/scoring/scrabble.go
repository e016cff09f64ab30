package scoring

// scrabblePoints is the standard English Scrabble letter-point table.
var scrabblePoints = map[rune]int{
	'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1, 'f': 4, 'g': 2, 'h': 4,
	'i': 1, 'j': 8, 'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1, 'p': 3,
	'q': 10, 'r': 1, 's': 1, 't': 1, 'u': 1, 'v': 4, 'w': 4, 'x': 8,
	'y': 4, 'z': 10,
}

// Scrabble returns the sum of Scrabble letter points for word,
// case-insensitively. Characters without a point value (digits,
// punctuation, non-ASCII letters) score 0.
func Scrabble(word string) int {
	total := 0
	for _, r := range word {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		total += scrabblePoints[r]
	}
	return total
}

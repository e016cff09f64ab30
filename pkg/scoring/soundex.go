package scoring

import "strings"

// soundexDigit maps a lowercase ASCII letter to its phonetic digit class.
// Vowels and the letters h, w, y carry no digit and are dropped.
var soundexDigit = map[byte]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

// SoundexLength is the fixed length of every code returned by Soundex.
const SoundexLength = 4

// Soundex returns a 4-character phonetic fingerprint of word: the first
// letter uppercased, followed by digit classes for the remaining letters.
// Droppable letters (vowels, h, w, y) and non-letter characters
// contribute nothing, consecutive duplicate digits collapse into one,
// and the result is padded with '0' or truncated so that it is always
// exactly 4 characters.
//
// Words that sound alike tend to share a code ("Robert" and "Rupert"
// both map to "R163"), which is what the selector's phonetic dedup
// stage relies on. The empty string maps to the empty string.
func Soundex(word string) string {
	if word == "" {
		return ""
	}

	lower := strings.ToLower(word)

	var b strings.Builder
	b.Grow(SoundexLength)
	first := lower[0]
	if first >= 'a' && first <= 'z' {
		first &^= 0x20 // uppercase the first letter
	}
	b.WriteByte(first)

	var prev byte
	for i := 1; i < len(lower) && b.Len() < SoundexLength; i++ {
		d, ok := soundexDigit[lower[i]]
		if !ok {
			continue
		}
		if d == prev {
			continue
		}
		b.WriteByte(d)
		prev = d
	}

	code := b.String()
	for len(code) < SoundexLength {
		code += "0"
	}
	return code
}

package selector

import (
	"strings"
	"unicode/utf8"
)

// Shape identifies which field of a Result carries the output.
type Shape int

const (
	// ShapeWords means Result.Words is populated.
	ShapeWords Shape = iota
	// ShapeInfo means Result.Entries is populated.
	ShapeInfo
	// ShapeString means Result.Joined is populated.
	ShapeString
)

// WordInfo is a selected word enriched with derived metadata.
type WordInfo struct {
	Word    string
	Length  int
	Entropy float64
}

// Result is the output of one Select call. Exactly one of Words,
// Entries, or Joined is populated, indicated by Shape; the shapes are
// never mixed.
type Result struct {
	Shape   Shape
	Words   []string
	Entries []WordInfo
	Joined  string
}

// Len returns the number of selected words regardless of shape.
func (r Result) Len() int {
	switch r.Shape {
	case ShapeInfo:
		return len(r.Entries)
	case ShapeString:
		if r.Joined == "" {
			return 0
		}
		return strings.Count(r.Joined, joinSeparator) + 1
	default:
		return len(r.Words)
	}
}

// joinSeparator delimits words in the ShapeString form.
const joinSeparator = ", "

// shapeResult builds the configured result shape from the selected
// words.
func shapeResult(words []string, cfg *Config) Result {
	switch {
	case cfg.AsString:
		return Result{Shape: ShapeString, Joined: strings.Join(words, joinSeparator)}
	case cfg.withMetadata():
		entries := make([]WordInfo, len(words))
		for i, w := range words {
			entries[i] = WordInfo{
				Word:    w,
				Length:  utf8.RuneCountInString(w),
				Entropy: cfg.entropyOf(w),
			}
		}
		return Result{Shape: ShapeInfo, Entries: entries}
	default:
		return Result{Shape: ShapeWords, Words: words}
	}
}

package wordlist

import "errors"

// Predefined errors for the wordlist package.
var (
	// ErrNoSource indicates that no word source could be resolved.
	ErrNoSource = errors.New("wordlist: no word source resolvable")

	// ErrEmptySource indicates that the source was readable but yielded
	// no usable words.
	ErrEmptySource = errors.New("wordlist: source contains no words")
)

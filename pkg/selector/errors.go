package selector

import "errors"

// Predefined errors for the selector package.
var (
	// ErrInvalidAmount indicates a negative requested word count. A
	// zero count is not an error: it short-circuits to an empty result.
	ErrInvalidAmount = errors.New("selector: amount of words must be a positive number")
)

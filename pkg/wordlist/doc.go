// Package wordlist supplies the ordered word sequences consumed by the
// selector pipeline. It owns everything the pipeline deliberately does
// not: obtaining raw text, splitting it into tokens, trimming and
// quote-stripping them, and reporting load failures.
//
// # Sources
//
// Words can come from three places, in roughly increasing coupling to
// the environment:
//
//   - Default() — the curated built-in list, always available.
//   - FromReader / FromFile — newline- or comma-separated text; tokens
//     are trimmed, surrounding quotes are stripped, blanks are skipped.
//   - FromEnv — resolves the source from WORDLIST_PATH (with optional
//     .env file support via godotenv), then loads it like FromFile.
//
// # Error Handling
//
// Load failures are fatal by default: FromFile and FromEnv return
// ErrNoSource or ErrEmptySource (wrapped with context where useful).
// A caller-supplied handler can suppress the failure, in which case the
// loader returns an empty list and a nil error, an effectively empty
// selection run. WithLogger additionally reports failures to a
// structured logger, naming the source that was being read:
//
//	words, err := wordlist.FromEnv(
//		wordlist.WithLogger(log),
//		wordlist.WithErrorHandler(func(err error) { fallback = true }),
//	)
//
// # Usage
//
//	import (
//		"github.com/wordkit/wordkit/pkg/selector"
//		"github.com/wordkit/wordkit/pkg/wordlist"
//	)
//
//	res, err := selector.Select(wordlist.Default(), 4, &selector.Config{
//		MinLength: 4,
//	})
package wordlist

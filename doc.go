// Package wordkit generates memorable-but-constrained word sequences,
// such as passphrase components, from plain word lists.
//
// The kit is a set of small, focused packages:
//
//   - pkg/selector — the selection pipeline: predicate filtering,
//     phonetic dedup, weighted sampling, seedable shuffling, sorting,
//     and result shaping, driven by a single flat Config.
//   - pkg/scoring — pure scoring primitives: Soundex phonetic codes,
//     Scrabble letter points, and a distinct-letter entropy estimate.
//   - pkg/wordlist — word sources: a curated built-in list plus
//     file, reader, and environment-driven loaders.
//   - pkg/logger — the slog-based structured logging factory shared by
//     the kit.
//
// Basic usage:
//
//	import (
//		"github.com/wordkit/wordkit/pkg/selector"
//		"github.com/wordkit/wordkit/pkg/wordlist"
//	)
//
//	history := selector.NewHistory()
//	res, err := selector.Select(wordlist.Default(), 4, &selector.Config{
//		MinLength:     5,
//		CaseTransform: selector.CaseCapitalize,
//		History:       history,
//	})
//	if err != nil {
//		// Handle error
//	}
//	fmt.Println(strings.Join(res.Words, "-"))
//
// The selector never performs I/O and never invents words: output is
// always a subset of the input, bounded by the requested count.
package wordkit

// Package scoring provides the pure word-scoring primitives used by the
// selector pipeline: a Soundex-style phonetic fingerprint, the classic
// Scrabble letter-point score, and a distinct-letter entropy estimate.
//
// All functions are deterministic, allocation-light, and safe for
// concurrent use. They treat input case-insensitively and never fail:
// unknown characters simply contribute nothing to a score.
//
// # Usage
//
//	import "github.com/wordkit/wordkit/pkg/scoring"
//
//	scoring.Soundex("Robert")  // "R163"
//	scoring.Scrabble("quiz")   // 22
//	scoring.Entropy("apple")   // 4 distinct letters × log2(26)
package scoring

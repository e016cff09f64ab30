// Package selector picks a bounded subset of words from a candidate
// list according to a large set of independently-toggleable filtering,
// scoring, ordering, and formatting rules. It is the core of wordkit,
// intended for generating memorable-but-constrained word sequences such
// as passphrase components.
//
// # Architecture
//
// A call to Select runs five stages in strict sequence:
//
//  1. Predicate filtering — every active Config option contributes one
//     independent rule; a word survives only the conjunction of all of
//     them, input order preserved.
//  2. Phonetic dedup — words whose Soundex code collides with an
//     earlier word are dropped (on by default).
//  3. Weighted expansion — each word is repeated by its configured
//     weight so random sampling is biased toward heavier words.
//  4. Ordering — a Fisher-Yates shuffle (seedable, or replaced by a
//     custom shuffle), then an optional case-insensitive sort that
//     fully determines pre-truncation order.
//  5. Selection — truncation to the requested count under a bounded
//     attempts loop, then reversal, case transform, History update,
//     and result shaping.
//
// The pipeline is synchronous and performs no I/O. The only observable
// side effect is the caller-owned History, which receives the lowercase
// form of every emitted word.
//
// # Usage
//
//	import "github.com/wordkit/wordkit/pkg/selector"
//
//	history := selector.NewHistory()
//	res, err := selector.Select(words, 3, &selector.Config{
//		MinLength: 4,
//		Sort:      selector.SortAsc,
//		History:   history,
//	})
//	if err != nil {
//		// Handle error
//	}
//	fmt.Println(res.Words)
//
// Reproducible selection pins the shuffle with a seed:
//
//	seed := int64(42)
//	res, _ := selector.Select(words, 5, &selector.Config{Seed: &seed})
//
// # Unsupported linguistic options
//
// The input is plain text with no linguistic annotation, so options
// that would require real analysis — syllable counts, parts of speech,
// word origins, and the like — cannot be honored. Setting any of them
// deterministically excludes every word for that call, yielding an
// empty result rather than an error. When a Logger is configured the
// triggering option names are reported once per call.
//
// # Error Handling
//
// Select returns ErrInvalidAmount for a negative count. A zero count is
// the fast path: an empty result of the configured shape, with no
// pipeline work and no History mutation. Empty results from strict
// filtering are normal outcomes, distinguishable only by length.
//
// # Concurrency
//
// Select itself is safe for concurrent use as long as each call uses
// its own History (or none). A History instance assumes single-writer,
// one-call-at-a-time usage; callers sharing one must synchronize
// externally.
package selector

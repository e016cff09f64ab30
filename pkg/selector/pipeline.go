package selector

import (
	"strings"
	"unicode"

	"github.com/wordkit/wordkit/pkg/logger"
	"github.com/wordkit/wordkit/pkg/scoring"
)

// maxSelectionAttempts bounds the truncation loop. It only matters on
// pools larger than the bound: the loop normally stops at the requested
// count or at pool exhaustion first.
const maxSelectionAttempts = 1000

// defaultEntropy is the estimator used when Config.EntropyFunc is nil.
var defaultEntropy = scoring.Entropy

// Select runs the full pipeline over words and returns up to count of
// them in the shape cfg requests.
//
// The pipeline executes five stages in strict sequence: predicate
// filtering, phonetic dedup, weighted pool expansion, shuffle-then-sort
// ordering, and truncation with post-processing. The input slice and
// cfg are read-only for the duration of the call; cfg.History is the
// one observable side effect, receiving the lowercase form of every
// word the call emits.
//
// A negative count returns ErrInvalidAmount. A zero count returns an
// empty result of the configured shape without running the pipeline or
// touching History. A nil cfg selects with all defaults.
func Select(words []string, count int, cfg *Config) (Result, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if count < 0 {
		return Result{}, ErrInvalidAmount
	}
	if count == 0 {
		return shapeResult(nil, cfg), nil
	}

	// One consolidated check for options that need linguistic metadata
	// plain-string input cannot supply. Setting any of them excludes
	// every word for this call.
	if names := unsupportedOptions(cfg); len(names) > 0 {
		if cfg.Logger != nil {
			cfg.Logger.Warn("unsupported linguistic options exclude all words",
				logger.Stage("filter"), logger.Options(names), logger.WordCount(len(words)))
		}
		return shapeResult(nil, cfg), nil
	}
	if cfg.Logger != nil && (cfg.IncludeDefinitions || cfg.IncludeExamples) {
		cfg.Logger.Warn("definitions and examples are unavailable for plain-string input",
			logger.Stage("postprocess"))
	}

	input := words
	if cfg.ValidateWords != nil {
		input = make([]string, 0, len(words))
		for _, w := range words {
			if cfg.ValidateWords(w) {
				input = append(input, w)
			}
		}
	}

	// Stage 1: predicate filters, ANDed, order preserved.
	filtered := applyFilters(input, buildRules(cfg, cfg.History))

	// Stage 2: phonetic dedup.
	if cfg.phoneticDistinct() {
		filtered = dedupPhonetic(filtered)
	}

	// Stage 3: weighted pool expansion. Always yields a fresh slice so
	// the ordering stage never mutates caller data.
	pool := expandWeights(filtered, cfg.Weights)

	// Stage 4: shuffle, then optional sort.
	orderPool(pool, cfg)

	// Stage 5: truncate, post-process, record history, shape result.
	selected := takeWords(pool, count, cfg.BatchSize)
	selected = applyMinEntropy(selected, cfg)

	if cfg.Reverse {
		reverseWords(selected)
	}
	transformCase(selected, cfg.CaseTransform)

	if cfg.History != nil {
		for _, w := range selected {
			cfg.History.Add(w)
		}
	}

	return shapeResult(selected, cfg), nil
}

// takeWords collects up to count words from the front of the pool,
// stopping early once the attempts bound is spent. Each attempt
// consumes one word; batch > 0 consumes that many words per attempt.
func takeWords(pool []string, count, batch int) []string {
	if batch <= 0 {
		batch = 1
	}

	taken := make([]string, 0, min(count, len(pool)))
	attempts := 0
	for start := 0; start < len(pool) && len(taken) < count && attempts < maxSelectionAttempts; start += batch {
		attempts++
		end := min(start+batch, len(pool))
		for _, w := range pool[start:end] {
			if len(taken) == count {
				break
			}
			taken = append(taken, w)
		}
	}
	return taken
}

// applyMinEntropy drops selected words whose entropy estimate falls
// below the configured floor.
func applyMinEntropy(words []string, cfg *Config) []string {
	if cfg.MinEntropy <= 0 {
		return words
	}
	kept := words[:0]
	for _, w := range words {
		if cfg.entropyOf(w) >= cfg.MinEntropy {
			kept = append(kept, w)
		}
	}
	return kept
}

func reverseWords(words []string) {
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
}

// transformCase applies the configured case transform in place.
func transformCase(words []string, transform CaseTransform) {
	switch transform {
	case CaseUpper:
		for i, w := range words {
			words[i] = strings.ToUpper(w)
		}
	case CaseLower:
		for i, w := range words {
			words[i] = strings.ToLower(w)
		}
	case CaseCapitalize:
		for i, w := range words {
			words[i] = capitalize(w)
		}
	}
}

// capitalize uppercases the first character only, leaving the rest of
// the word unchanged.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

package selector

import (
	"math/rand/v2"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// expandWeights inflates the pool for probability-weighted sampling:
// each word is repeated by its configured weight, preserving the
// relative order of first occurrences. Unlisted words weigh 1; weight 0
// (or negative) removes the word from the expanded pool. Without a
// weight map the pool is returned as a fresh copy so later in-place
// stages never touch the caller's slice.
func expandWeights(words []string, weights map[string]int) []string {
	if len(weights) == 0 {
		pool := make([]string, len(words))
		copy(pool, words)
		return pool
	}

	pool := make([]string, 0, len(words))
	for _, w := range words {
		weight, ok := weights[strings.ToLower(w)]
		if !ok {
			weight = 1
		}
		for i := 0; i < weight; i++ {
			pool = append(pool, w)
		}
	}
	return pool
}

// newRand builds the random source for the default shuffle. A seed
// yields a deterministic generator independent of wall-clock time;
// otherwise the generator is seeded from process entropy.
func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		s := uint64(*seed)
		return rand.New(rand.NewPCG(s, s))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// fisherYates permutes words in place using r as the uniform source.
func fisherYates(words []string, r *rand.Rand) {
	for i := len(words) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}

// orderPool applies the ordering stage: a shuffle (custom or default
// Fisher-Yates) followed by an optional case-insensitive lexicographic
// sort. A requested sort strictly determines the final pre-truncation
// order; the shuffle then only matters when no sort is configured.
func orderPool(pool []string, cfg *Config) {
	if cfg.Shuffle != nil {
		cfg.Shuffle(pool)
	} else {
		fisherYates(pool, newRand(cfg.Seed))
	}

	switch cfg.Sort {
	case SortAsc:
		sortWords(pool, false)
	case SortDesc:
		sortWords(pool, true)
	}
}

// sortWords sorts in place with a locale-aware, case-insensitive
// collator.
func sortWords(words []string, descending bool) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(words, func(i, j int) bool {
		cmp := c.CompareString(words[i], words[j])
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

package selector

import "github.com/wordkit/wordkit/pkg/scoring"

// dedupPhonetic walks words in order and keeps only the first word seen
// for each Soundex code, dropping later sound-alikes. The code map is
// fresh per call; dedup never looks across calls.
func dedupPhonetic(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	kept := make([]string, 0, len(words))

	for _, w := range words {
		code := scoring.Soundex(w)
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		kept = append(kept, w)
	}
	return kept
}

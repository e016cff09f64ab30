package selector

import (
	"strings"
	"unicode/utf8"

	"github.com/wordkit/wordkit/pkg/scoring"
)

// filterRule is a single named predicate a word must pass to remain in
// the candidate pool. Rules receive both the raw word and its lowercase
// form so each rule can pick whichever comparison it needs.
type filterRule struct {
	name  string
	check func(word, lower string) bool
}

// ambiguousGlyphs are characters easily confused in print or typing.
// Words are lowercased before the containment test, so only the glyphs
// with a lowercase or digit form can actually match.
const ambiguousGlyphs = "l1I0O"

// vowels is the fixed vowel set used by the letter-class counters.
const vowels = "aeiou"

// buildRules assembles the ordered list of active predicates for cfg.
// Inactive options contribute no rule, so the filter stage is literally
// the conjunction of this list.
func buildRules(cfg *Config, history *History) []filterRule {
	var rules []filterRule

	add := func(name string, check func(word, lower string) bool) {
		rules = append(rules, filterRule{name: name, check: check})
	}

	if cfg.FixedLength > 0 {
		add("fixedLength", func(_, lower string) bool {
			return utf8.RuneCountInString(lower) == cfg.FixedLength
		})
	}
	if cfg.MinLength > 0 {
		add("minLength", func(_, lower string) bool {
			return utf8.RuneCountInString(lower) >= cfg.MinLength
		})
	}
	if cfg.MaxLength > 0 {
		add("maxLength", func(_, lower string) bool {
			return utf8.RuneCountInString(lower) <= cfg.MaxLength
		})
	}

	if len(cfg.StartsWith) > 0 {
		prefixes := lowerAll(cfg.StartsWith)
		add("startsWith", func(_, lower string) bool {
			for _, p := range prefixes {
				if strings.HasPrefix(lower, p) {
					return true
				}
			}
			return false
		})
	}
	if len(cfg.EndsWith) > 0 {
		suffixes := lowerAll(cfg.EndsWith)
		add("endsWith", func(_, lower string) bool {
			for _, s := range suffixes {
				if strings.HasSuffix(lower, s) {
					return true
				}
			}
			return false
		})
	}
	if len(cfg.ExcludeSubstrings) > 0 {
		subs := lowerAll(cfg.ExcludeSubstrings)
		add("excludeSubstrings", func(_, lower string) bool {
			for _, s := range subs {
				if strings.Contains(lower, s) {
					return false
				}
			}
			return true
		})
	}

	// Membership: whitelist before blacklist.
	if len(cfg.Whitelist) > 0 {
		allowed := lowerSet(cfg.Whitelist)
		add("whitelist", func(_, lower string) bool {
			_, ok := allowed[lower]
			return ok
		})
	}
	if len(cfg.Blacklist) > 0 {
		denied := lowerSet(cfg.Blacklist)
		add("blacklist", func(_, lower string) bool {
			_, ok := denied[lower]
			return !ok
		})
	}

	if cfg.ExcludeAmbiguous {
		add("excludeAmbiguous", func(_, lower string) bool {
			return !strings.ContainsAny(lower, ambiguousGlyphs)
		})
	}
	if !cfg.AllowNumbers {
		add("allowNumbers", func(_, lower string) bool {
			return !strings.ContainsFunc(lower, isDigit)
		})
	}
	if !cfg.AllowSpecialChars {
		add("allowSpecialChars", func(_, lower string) bool {
			return !strings.ContainsFunc(lower, isSpecial)
		})
	}

	if cfg.Pattern != nil {
		add("pattern", func(word, _ string) bool {
			return cfg.Pattern.MatchString(word)
		})
	}

	if history != nil {
		add("history", func(_, lower string) bool {
			return !history.Contains(lower)
		})
	}

	if cfg.UniqueCharacters {
		add("uniqueCharacters", func(_, lower string) bool {
			return allDistinct(lower)
		})
	}
	if cfg.MaxRepeatLetters > 0 {
		add("maxRepeatLetters", func(_, lower string) bool {
			return maxLetterCount(lower) <= cfg.MaxRepeatLetters
		})
	}
	if cfg.ExcludeRepeatingLetters {
		add("excludeRepeatingLetters", func(_, lower string) bool {
			return maxLetterCount(lower) <= 1
		})
	}

	if len(cfg.LimitVowels) > 0 {
		wanted := strings.ToLower(strings.Join(cfg.LimitVowels, ""))
		add("limitVowels", func(_, lower string) bool {
			return strings.ContainsAny(lower, wanted)
		})
	}
	if len(cfg.ExcludeVowels) > 0 {
		banned := strings.ToLower(strings.Join(cfg.ExcludeVowels, ""))
		add("excludeVowels", func(_, lower string) bool {
			return !strings.ContainsAny(lower, banned)
		})
	}
	if len(cfg.ExcludeLetters) > 0 {
		banned := lowerAll(cfg.ExcludeLetters)
		add("excludeLetters", func(_, lower string) bool {
			for _, l := range banned {
				if strings.Contains(lower, l) {
					return false
				}
			}
			return true
		})
	}
	if len(cfg.IncludeLetters) > 0 {
		wanted := lowerAll(cfg.IncludeLetters)
		add("includeLetters", func(_, lower string) bool {
			for _, l := range wanted {
				if strings.Contains(lower, l) {
					return true
				}
			}
			return false
		})
	}
	if len(cfg.MustContainAll) > 0 {
		required := lowerAll(cfg.MustContainAll)
		add("mustContainAll", func(_, lower string) bool {
			for _, l := range required {
				if !strings.Contains(lower, l) {
					return false
				}
			}
			return true
		})
	}
	if len(cfg.MustContainAny) > 0 {
		wanted := lowerAll(cfg.MustContainAny)
		add("mustContainAny", func(_, lower string) bool {
			for _, l := range wanted {
				if strings.Contains(lower, l) {
					return true
				}
			}
			return false
		})
	}

	if cfg.MinConsonants > 0 {
		add("minConsonants", func(_, lower string) bool {
			return countConsonants(lower) >= cfg.MinConsonants
		})
	}
	if cfg.MinVowels > 0 {
		add("minVowels", func(_, lower string) bool {
			return countVowels(lower) >= cfg.MinVowels
		})
	}

	if cfg.RhymesWith != "" {
		ending := rhymeEnding(cfg.RhymesWith)
		add("rhymesWith", func(_, lower string) bool {
			return strings.HasSuffix(lower, ending)
		})
	}
	if cfg.NotRhymesWith != "" {
		ending := rhymeEnding(cfg.NotRhymesWith)
		add("notRhymesWith", func(_, lower string) bool {
			return !strings.HasSuffix(lower, ending)
		})
	}

	if cfg.ScrabbleRange != nil {
		r := *cfg.ScrabbleRange
		add("scrabbleScoreRange", func(_, lower string) bool {
			score := scoring.Scrabble(lower)
			return score >= r.Min && score <= r.Max
		})
	}

	if cfg.CustomFilter != nil {
		add("customFilter", func(word, _ string) bool {
			return cfg.CustomFilter(word)
		})
	}

	return rules
}

// applyFilters runs every rule against every word, preserving input
// order. A word survives only if it passes the full conjunction.
func applyFilters(words []string, rules []filterRule) []string {
	if len(rules) == 0 {
		return words
	}

	kept := make([]string, 0, len(words))
wordLoop:
	for _, w := range words {
		lower := strings.ToLower(w)
		for _, r := range rules {
			if !r.check(w, lower) {
				continue wordLoop
			}
		}
		kept = append(kept, w)
	}
	return kept
}

// unsupportedOptions returns the names of configured options that would
// require linguistic metadata (syllables, parts of speech, etymology)
// unavailable for plain-string input. Any non-empty return triggers
// the all-exclude policy for the call.
func unsupportedOptions(cfg *Config) []string {
	var names []string

	set := func(active bool, name string) {
		if active {
			names = append(names, name)
		}
	}

	set(len(cfg.Languages) > 0, "languages")
	set(cfg.SyllableCount > 0, "syllableCount")
	set(cfg.LimitSyllables > 0, "limitSyllables")
	set(len(cfg.ExcludePartsOfSpeech) > 0, "excludePartsOfSpeech")
	set(len(cfg.IncludePartsOfSpeech) > 0, "includePartsOfSpeech")
	set(len(cfg.ExcludeWordOrigins) > 0, "excludeWordOrigins")
	set(len(cfg.IncludeWordOrigins) > 0, "includeWordOrigins")
	set(len(cfg.Synonyms) > 0, "synonyms")
	set(cfg.ExcludeProperNouns, "excludeProperNouns")
	set(cfg.ExcludeSlang, "excludeSlang")
	set(cfg.ExcludeHomonyms, "excludeHomonyms")
	set(cfg.IncludeHomonyms, "includeHomonyms")
	set(cfg.ExcludeCompoundWords, "excludeCompoundWords")
	set(cfg.ExcludeAbbreviations, "excludeAbbreviations")
	set(cfg.OnlyMonosyllabic, "onlyMonosyllabic")
	set(cfg.OnlyPolysyllabic, "onlyPolysyllabic")

	return names
}

// rhymeEnding extracts the last two characters of the target word,
// lowercased. Shorter targets rhyme on their full text.
func rhymeEnding(target string) string {
	runes := []rune(strings.ToLower(target))
	if len(runes) <= 2 {
		return string(runes)
	}
	return string(runes[len(runes)-2:])
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSpecial reports characters outside ASCII letters and digits.
// Digits are governed separately by the AllowNumbers option.
func isSpecial(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return false
	case r >= 'A' && r <= 'Z':
		return false
	case r >= '0' && r <= '9':
		return false
	}
	return true
}

func allDistinct(lower string) bool {
	seen := make(map[rune]struct{}, len(lower))
	for _, r := range lower {
		if _, dup := seen[r]; dup {
			return false
		}
		seen[r] = struct{}{}
	}
	return true
}

// maxLetterCount returns the highest occurrence count of any single
// ASCII letter in the lowercased word.
func maxLetterCount(lower string) int {
	var counts [26]int
	max := 0
	for _, r := range lower {
		if r < 'a' || r > 'z' {
			continue
		}
		counts[r-'a']++
		if counts[r-'a'] > max {
			max = counts[r-'a']
		}
	}
	return max
}

func countVowels(lower string) int {
	n := 0
	for _, r := range lower {
		if strings.ContainsRune(vowels, r) {
			n++
		}
	}
	return n
}

func countConsonants(lower string) int {
	n := 0
	for _, r := range lower {
		if r >= 'a' && r <= 'z' && !strings.ContainsRune(vowels, r) {
			n++
		}
	}
	return n
}

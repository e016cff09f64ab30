package selector

import (
	"log/slog"
	"regexp"
)

// SortOrder controls the optional lexicographic sort applied after the
// shuffle. The zero value leaves the shuffled order untouched.
type SortOrder string

const (
	// SortNone keeps the shuffled order.
	SortNone SortOrder = ""
	// SortAsc sorts ascending, case-insensitively.
	SortAsc SortOrder = "asc"
	// SortDesc sorts descending, case-insensitively.
	SortDesc SortOrder = "desc"
)

// CaseTransform controls the case applied to selected words before they
// are returned. The zero value leaves words untouched.
type CaseTransform string

const (
	// CaseNone leaves words as they appear in the input.
	CaseNone CaseTransform = ""
	// CaseUpper uppercases every selected word.
	CaseUpper CaseTransform = "upper"
	// CaseLower lowercases every selected word.
	CaseLower CaseTransform = "lower"
	// CaseCapitalize uppercases the first character of every selected
	// word and leaves the rest unchanged.
	CaseCapitalize CaseTransform = "capitalize"
)

// ScoreRange is an inclusive [Min, Max] bound on a word's Scrabble
// score.
type ScoreRange struct {
	Min int
	Max int
}

// Config describes one selection run. Every field is optional; the zero
// value of a field means "no constraint from this option". Config is
// read-only for the duration of a Select call and may be reused across
// calls.
//
// Predicate options are ANDed: a word survives the filter stage only if
// it satisfies every active constraint.
type Config struct {
	// Length constraints, in characters. FixedLength wins exactness;
	// MinLength and MaxLength are inclusive bounds. Zero means unset.
	FixedLength int
	MinLength   int
	MaxLength   int

	// StartsWith keeps a word when it begins with ANY listed prefix,
	// case-insensitively. EndsWith behaves the same for suffixes.
	StartsWith []string
	EndsWith   []string

	// ExcludeSubstrings rejects a word containing ANY listed substring,
	// case-insensitively.
	ExcludeSubstrings []string

	// Whitelist, when non-empty, admits only listed words. Blacklist
	// rejects listed words. Both are case-insensitive; the whitelist is
	// evaluated first.
	Whitelist []string
	Blacklist []string

	// ExcludeAmbiguous rejects words containing glyphs easily confused
	// in print or typing: l, 1, I, 0, O.
	ExcludeAmbiguous bool

	// AllowNumbers admits digits in words; off by default. AllowSpecialChars
	// admits characters that are neither ASCII letters nor digits; off
	// by default.
	AllowNumbers      bool
	AllowSpecialChars bool

	// Pattern keeps only words matching the expression.
	Pattern *regexp.Regexp

	// History excludes words already issued in earlier calls and records
	// the words issued by this one. Caller-owned; see History for the
	// single-writer contract.
	History *History

	// UniqueCharacters requires every character of a word to be
	// distinct, case-insensitively. ExcludeRepeatingLetters rejects any
	// word in which a letter occurs more than once. MaxRepeatLetters,
	// when positive, bounds how often any single letter may occur.
	UniqueCharacters        bool
	ExcludeRepeatingLetters bool
	MaxRepeatLetters        int

	// LimitVowels keeps only words containing at least one listed
	// vowel. ExcludeVowels rejects words containing any listed vowel.
	LimitVowels   []string
	ExcludeVowels []string

	// ExcludeLetters rejects words containing any listed letter;
	// IncludeLetters keeps only words containing at least one.
	// MustContainAll requires every listed letter to be present;
	// MustContainAny requires at least one.
	ExcludeLetters []string
	IncludeLetters []string
	MustContainAll []string
	MustContainAny []string

	// MinConsonants and MinVowels are lower bounds on letter class
	// counts, against the fixed vowel set {a, e, i, o, u}.
	MinConsonants int
	MinVowels     int

	// RhymesWith keeps words whose ending matches the last two
	// characters of the target; NotRhymesWith rejects them. This is a
	// crude suffix heuristic, not phonetic rhyme detection.
	RhymesWith    string
	NotRhymesWith string

	// ScrabbleRange bounds the word's Scrabble score, inclusive.
	ScrabbleRange *ScoreRange

	// CustomFilter is a caller-supplied predicate ANDed after all
	// built-in rules.
	CustomFilter func(word string) bool

	// ValidateWords is run against raw input tokens before any other
	// stage; tokens failing it are discarded.
	ValidateWords func(word string) bool

	// Unsupported linguistic dimensions. The input is plain text with
	// no linguistic annotation, so setting any of these excludes every
	// word for the call. This documented limitation is deliberate; see
	// the package documentation.
	Languages            []string
	SyllableCount        int
	LimitSyllables       int
	ExcludePartsOfSpeech []string
	IncludePartsOfSpeech []string
	ExcludeWordOrigins   []string
	IncludeWordOrigins   []string
	Synonyms             []string
	ExcludeProperNouns   bool
	ExcludeSlang         bool
	ExcludeHomonyms      bool
	IncludeHomonyms      bool
	ExcludeCompoundWords bool
	ExcludeAbbreviations bool
	OnlyMonosyllabic     bool
	OnlyPolysyllabic     bool

	// PhoneticDistinct drops words whose Soundex code collides with an
	// earlier word's. Defaults to true; set an explicit false to keep
	// sound-alike words.
	PhoneticDistinct *bool

	// Weights biases random sampling by repeating a word N times in the
	// pool before shuffling. Keys are lowercase words; unlisted words
	// weigh 1. Weight 0 removes the word from the weighted pool.
	Weights map[string]int

	// Seed makes the default shuffle reproducible. When nil the shuffle
	// draws from process entropy.
	Seed *int64

	// Shuffle replaces the default Fisher-Yates shuffle. It must
	// permute the slice in place.
	Shuffle func(words []string)

	// Sort applies a locale-aware, case-insensitive lexicographic sort
	// after shuffling, fully determining pre-truncation order.
	Sort SortOrder

	// BatchSize, when positive, bounds how many pool words the
	// selection loop consumes per attempt.
	BatchSize int

	// Reverse reverses the selected words before post-processing.
	Reverse bool

	// CaseTransform is applied to every selected word.
	CaseTransform CaseTransform

	// MinEntropy drops selected words whose entropy estimate falls
	// below the floor, in bits.
	MinEntropy float64

	// EntropyFunc replaces the default distinct-letter entropy
	// estimate used for metadata and the MinEntropy floor.
	EntropyFunc func(word string) float64

	// AsString joins the selected words into a single ", "-delimited
	// string. IncludeMetadata (or ReturnEntropy) returns per-word
	// records with length and entropy instead of plain words. The two
	// shapes are mutually exclusive; AsString wins.
	AsString        bool
	IncludeMetadata bool
	ReturnEntropy   bool

	// IncludeDefinitions and IncludeExamples are accepted for
	// compatibility but produce nothing: plain-string input carries no
	// dictionary data. They are reported through Logger when set.
	IncludeDefinitions bool
	IncludeExamples    bool

	// Logger, when non-nil, receives structured diagnostics such as
	// which unsupported options triggered the all-exclude policy. A nil
	// Logger disables logging entirely.
	Logger *slog.Logger
}

// phoneticDistinct resolves the PhoneticDistinct default.
func (c *Config) phoneticDistinct() bool {
	if c.PhoneticDistinct == nil {
		return true
	}
	return *c.PhoneticDistinct
}

// withMetadata reports whether the result carries per-word records.
func (c *Config) withMetadata() bool {
	return c.IncludeMetadata || c.ReturnEntropy
}

// entropyOf computes a word's entropy with the configured estimator.
func (c *Config) entropyOf(word string) float64 {
	if c.EntropyFunc != nil {
		return c.EntropyFunc(word)
	}
	return defaultEntropy(word)
}

package selector

import "strings"

// History is the cross-call memory of already-issued words. The filter
// stage rejects any word whose lowercase form it contains, and the
// post-processing stage records every word a call emits.
//
// A History instance is caller-owned and not synchronized internally:
// the contract is single-writer, one Select call at a time per
// instance. Concurrent callers sharing a History must coordinate
// externally.
type History struct {
	seen map[string]struct{}
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{seen: make(map[string]struct{})}
}

// Contains reports whether word (case-insensitively) has been issued.
func (h *History) Contains(word string) bool {
	if h == nil || h.seen == nil {
		return false
	}
	_, ok := h.seen[strings.ToLower(word)]
	return ok
}

// Add records word in lowercase form.
func (h *History) Add(word string) {
	if h == nil {
		return
	}
	if h.seen == nil {
		h.seen = make(map[string]struct{})
	}
	h.seen[strings.ToLower(word)] = struct{}{}
}

// Clear forgets every recorded word, allowing previously issued words
// to be selected again.
func (h *History) Clear() {
	if h == nil {
		return
	}
	h.seen = make(map[string]struct{})
}

// Len returns the number of recorded words.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.seen)
}

// Words returns the recorded words in no particular order.
func (h *History) Words() []string {
	if h == nil || len(h.seen) == 0 {
		return nil
	}
	words := make([]string, 0, len(h.seen))
	for w := range h.seen {
		words = append(words, w)
	}
	return words
}

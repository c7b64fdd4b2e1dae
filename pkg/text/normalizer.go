// Package text normalizes user messages before keyword matching.
package text

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Normalizer lowercases text, collapses whitespace, and strips characters
// that carry no meaning for keyword matching. Results are memoized in a
// bounded LRU so repeated messages do not pay for the rune walk twice.
type Normalizer struct {
	memo *lru.Cache[string, string]
}

// New creates a Normalizer with a memo of the given capacity.
func New(memoSize int) (*Normalizer, error) {
	if memoSize <= 0 {
		memoSize = 1000
	}
	memo, err := lru.New[string, string](memoSize)
	if err != nil {
		return nil, err
	}
	return &Normalizer{memo: memo}, nil
}

// Normalize returns the canonical form of s: lowercased, runs of whitespace
// collapsed to single spaces, and everything outside letters, digits,
// underscore, and the punctuation set ".,?!।॥" removed. The danda and
// double danda are kept because Devanagari and Odia text ends sentences
// with them. Hyphens are dropped, so "head-ache" matches "headache".
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	if cached, ok := n.memo.Get(s); ok {
		return cached
	}

	lower := strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(lower))
	space := false
	for _, r := range lower {
		if unicode.IsSpace(r) {
			if !space && b.Len() > 0 {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		if !keepRune(r) {
			continue
		}
		space = false
		b.WriteRune(r)
	}

	out := strings.TrimRight(b.String(), " ")
	n.memo.Add(s, out)
	return out
}

// MemoLen reports how many normalized strings are currently memoized.
func (n *Normalizer) MemoLen() int {
	return n.memo.Len()
}

func keepRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '_', '.', ',', '?', '!', '।', '॥':
		return true
	}
	return false
}

// Package lexicon holds the word list every solve runs against.
//
// A Lexicon is an immutable, lexicographically sorted slice of lowercase
// words. Membership and prefix queries both run as binary searches over the
// same slice, so the path walk can ask "is this a word?" and "can this still
// become one?" without any side structure. Input order is never trusted:
// construction always sorts.
package lexicon

import (
	"sort"
	"strings"
)

// MinWordLen is the shortest word the game scores. Queries below this
// length always report a live prefix.
const MinWordLen = 3

// maxWordLen is the longest word any 4x4 board can produce: sixteen cells
// each contributing at most two letters (the qu die).
const maxWordLen = 32

// Lexicon is a sorted word list. The zero value is empty and usable.
type Lexicon struct {
	words []string
}

// New builds a Lexicon from raw words. Entries are trimmed and lowercased;
// blanks, non-letter entries and words no board could ever produce are
// dropped. The remainder is sorted and deduplicated.
func New(words []string) *Lexicon {
	list := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) < MinWordLen || len(w) > maxWordLen || !isLowerAlpha(w) {
			continue
		}
		list = append(list, w)
	}
	sort.Strings(list)

	out := list[:0]
	for i, w := range list {
		if i > 0 && w == list[i-1] {
			continue
		}
		out = append(out, w)
	}
	return &Lexicon{words: out}
}

// Contains reports whether word is in the list.
func (l *Lexicon) Contains(word string) bool {
	lo, hi := 0, len(l.words)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case l.words[mid] == word:
			return true
		case l.words[mid] < word:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

// HasPrefix reports whether any word starts with prefix. The probed word is
// cut to the prefix length before comparing, so equality means some word
// extends the prefix. Prefixes shorter than MinWordLen match
// unconditionally.
func (l *Lexicon) HasPrefix(prefix string) bool {
	if len(prefix) < MinWordLen {
		return true
	}
	lo, hi := 0, len(l.words)
	for lo < hi {
		mid := lo + (hi-lo)/2
		probe := l.words[mid]
		if len(probe) > len(prefix) {
			probe = probe[:len(prefix)]
		}
		switch {
		case probe == prefix:
			return true
		case probe < prefix:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

// Len returns the number of words in the list.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Words returns a copy of the sorted word list.
func (l *Lexicon) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

func isLowerAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

package solver

import "sort"

// Results accumulates found words in sorted order without duplicates.
// Insertion keeps the slice ordered as it goes; there is no deferred sort
// pass, so the set is readable mid-walk.
type Results struct {
	words []string
	score int
}

// NewResults returns an empty result set.
func NewResults() *Results {
	return &Results{}
}

// Insert adds word at its sorted position and banks its points.
// Returns false when the word is already present.
func (r *Results) Insert(word string) bool {
	i := sort.SearchStrings(r.words, word)
	if i < len(r.words) && r.words[i] == word {
		return false
	}
	r.words = append(r.words, "")
	copy(r.words[i+1:], r.words[i:])
	r.words[i] = word
	r.score += Points(len(word))
	return true
}

// Contains reports whether word is already in the set.
func (r *Results) Contains(word string) bool {
	i := sort.SearchStrings(r.words, word)
	return i < len(r.words) && r.words[i] == word
}

// Words returns a copy of the sorted word list.
func (r *Results) Words() []string {
	out := make([]string, len(r.words))
	copy(out, r.words)
	return out
}

// Len returns how many words have been found.
func (r *Results) Len() int {
	return len(r.words)
}

// TotalScore returns the summed points of every word in the set.
func (r *Results) TotalScore() int {
	return r.score
}

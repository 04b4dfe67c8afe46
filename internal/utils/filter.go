package utils

import "strings"

// NormalizeGuess trims and lowercases a raw guess from the terminal
func NormalizeGuess(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsPlayableWord checks if a guess could ever appear on a board.
// Returns false for empty strings and anything outside a-z.
func IsPlayableWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// ClaimTracker records which words a player has already claimed so a word
// can only score once per session
type ClaimTracker struct {
	claimed map[string]bool
	points  int
}

// NewClaimTracker creates an empty tracker
func NewClaimTracker() *ClaimTracker {
	return &ClaimTracker{claimed: make(map[string]bool)}
}

// Claim marks a word as found and adds its points.
// Returns false if the word was already claimed
func (t *ClaimTracker) Claim(word string, points int) bool {
	word = strings.ToLower(word)
	if t.claimed[word] {
		return false
	}
	t.claimed[word] = true
	t.points += points
	return true
}

// Claimed reports whether the word has been claimed before
func (t *ClaimTracker) Claimed(word string) bool {
	return t.claimed[strings.ToLower(word)]
}

// Count returns how many words have been claimed
func (t *ClaimTracker) Count() int {
	return len(t.claimed)
}

// Points returns the running score
func (t *ClaimTracker) Points() int {
	return t.points
}

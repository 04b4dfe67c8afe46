// Package solver walks a board and collects every dictionary word that can
// be traced as a simple path over its cells.
//
// The walk starts once per cell and steps to any of the eight surrounding
// cells, never reusing a cell within one path. Candidate prefixes are
// checked against the dictionary as they grow; a prefix no word starts
// with ends its branch on the spot. Found words land in a Results set that
// stays sorted and deduplicated as it fills.
package solver

// Dictionary answers the two questions the walk asks: whether a string is
// a word, and whether any word starts with it. Implementations must treat
// queries as lowercase.
type Dictionary interface {
	Contains(word string) bool
	HasPrefix(prefix string) bool
}

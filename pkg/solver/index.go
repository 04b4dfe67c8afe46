package solver

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Hint is one indexed word with its points.
type Hint struct {
	Word   string
	Points int
}

// WordIndex holds a finished solve in a patricia trie, serving the exact
// and prefix lookups interactive play and the hint op need.
type WordIndex struct {
	trie  *patricia.Trie
	count int
}

// NewWordIndex indexes every word of a result set with its points.
func NewWordIndex(res *Results) *WordIndex {
	trie := patricia.NewTrie()
	for _, w := range res.Words() {
		trie.Insert(patricia.Prefix(w), Points(len(w)))
	}
	return &WordIndex{trie: trie, count: res.Len()}
}

// Lookup returns the points for word when the solve found it.
func (ix *WordIndex) Lookup(word string) (int, bool) {
	item := ix.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, false
	}
	points, ok := item.(int)
	if !ok {
		return 0, false
	}
	return points, true
}

// Suggest returns up to limit indexed words starting with prefix, highest
// points first, ties in word order. limit <= 0 means no cap.
func (ix *WordIndex) Suggest(prefix string, limit int) []Hint {
	var hints []Hint
	ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		if points, ok := item.(int); ok {
			hints = append(hints, Hint{Word: string(p), Points: points})
		}
		return nil
	})

	sort.Slice(hints, func(i, j int) bool {
		if hints[i].Points != hints[j].Points {
			return hints[i].Points > hints[j].Points
		}
		return hints[i].Word < hints[j].Word
	})

	if limit > 0 && len(hints) > limit {
		hints = hints[:limit]
	}
	return hints
}

// Len returns the number of indexed words.
func (ix *WordIndex) Len() int {
	return ix.count
}

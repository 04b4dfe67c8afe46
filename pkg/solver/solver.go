package solver

import (
	"math/bits"
	"sync"

	"github.com/Kromey/boggle-solver/pkg/board"
)

// offsets are the eight directions a path can step in.
var offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Metrics counts what a single solve did.
type Metrics struct {
	Visits   int // cells stepped onto
	Prunes   int // branches ended by a dead prefix
	Found    int // distinct words in the final set
	MaxDepth int // longest path, in cells
}

// Solver runs searches against one dictionary. A Solver is reusable across
// boards but not safe for concurrent FindAll calls on the same instance.
type Solver struct {
	dict    Dictionary
	workers int
	metrics Metrics
}

// New returns a sequential Solver over dict.
func New(dict Dictionary) *Solver {
	return &Solver{dict: dict}
}

// NewParallel returns a Solver that fans the sixteen start cells out over
// up to workers goroutines. Values outside 1..16 mean one worker per start
// cell. The word set and score always match the sequential walk.
func NewParallel(dict Dictionary, workers int) *Solver {
	if workers <= 0 || workers > board.Cells {
		workers = board.Cells
	}
	return &Solver{dict: dict, workers: workers}
}

// FindAll traces every dictionary word on the board and returns the
// completed set.
func (s *Solver) FindAll(b *board.Board) *Results {
	if s.workers > 0 {
		return s.findParallel(b)
	}

	res := NewResults()
	var m Metrics
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			s.walk(b, x, y, 0, "", res, &m)
		}
	}
	m.Found = res.Len()
	s.metrics = m
	return res
}

// LastMetrics reports the counters of the most recent FindAll.
func (s *Solver) LastMetrics() Metrics {
	return s.metrics
}

// walk steps the path onto (x, y). visited holds one bit per cell in
// row-major order and travels by value, so sibling branches never see each
// other's steps and nothing needs unwinding on return.
func (s *Solver) walk(b *board.Board, x, y int, visited uint16, word string, res *Results, m *Metrics) {
	if !board.In(x, y) {
		return
	}
	bit := uint16(1) << uint(y*board.Size+x)
	if visited&bit != 0 {
		return
	}
	visited |= bit
	word += b.Cell(x, y)

	m.Visits++
	if d := bits.OnesCount16(visited); d > m.MaxDepth {
		m.MaxDepth = d
	}

	if len(word) >= MinWordLen {
		if s.dict.Contains(word) {
			res.Insert(word)
		}
		// a word with no extensions still ends here, after being counted
		if !s.dict.HasPrefix(word) {
			m.Prunes++
			return
		}
	}

	for _, d := range offsets {
		s.walk(b, x+d[0], y+d[1], visited, word, res, m)
	}
}

// findParallel pulls start cells from a shared channel into per-worker
// sets, then merges after the wait. Merging through Insert keeps the
// combined set sorted and drops words found by more than one worker.
func (s *Solver) findParallel(b *board.Board) *Results {
	starts := make(chan int, board.Cells)
	for i := 0; i < board.Cells; i++ {
		starts <- i
	}
	close(starts)

	part := make([]*Results, s.workers)
	mets := make([]Metrics, s.workers)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			res := NewResults()
			var m Metrics
			for i := range starts {
				s.walk(b, i%board.Size, i/board.Size, 0, "", res, &m)
			}
			part[slot] = res
			mets[slot] = m
		}(w)
	}
	wg.Wait()

	merged := NewResults()
	var total Metrics
	for w := 0; w < s.workers; w++ {
		for _, word := range part[w].Words() {
			merged.Insert(word)
		}
		total.Visits += mets[w].Visits
		total.Prunes += mets[w].Prunes
		if mets[w].MaxDepth > total.MaxDepth {
			total.MaxDepth = mets[w].MaxDepth
		}
	}
	total.Found = merged.Len()
	s.metrics = total
	return merged
}

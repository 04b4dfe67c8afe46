package solver

import (
	"sync"

	"github.com/charmbracelet/log"
)

// BoardCache keeps recent solves keyed by the board's cell string, so
// serving the same board twice costs one map lookup. Result sets handed
// out are shared: callers must treat them as read-only.
type BoardCache struct {
	entries     map[string]*Results
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	maxBoards   int
	mu          sync.Mutex
}

func NewBoardCache(maxBoards int) *BoardCache {
	if maxBoards <= 0 {
		maxBoards = 64
	}
	return &BoardCache{
		entries:    make(map[string]*Results, maxBoards),
		accessTime: make(map[string]int64, maxBoards),
		maxBoards:  maxBoards,
	}
}

func (bc *BoardCache) Get(key string) (*Results, bool) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	res, ok := bc.entries[key]
	if !ok {
		return nil, false
	}
	bc.hits++
	bc.markAccessed(key)
	return res, true
}

func (bc *BoardCache) Put(key string, res *Results) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if _, ok := bc.entries[key]; !ok && len(bc.entries) >= bc.maxBoards {
		bc.evictLRU()
	}
	bc.entries[key] = res
	bc.markAccessed(key)
}

func (bc *BoardCache) Len() int {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return len(bc.entries)
}

func (bc *BoardCache) Stats() map[string]int {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	return map[string]int{
		"cachedBoards": len(bc.entries),
		"maxBoards":    bc.maxBoards,
		"cacheHits":    int(bc.hits),
	}
}

func (bc *BoardCache) markAccessed(key string) {
	bc.accessCount++
	bc.accessTime[key] = bc.accessCount
}

func (bc *BoardCache) evictLRU() {
	var oldestKey string
	var oldestTime int64 = 9223372036854775807

	for key, accessTime := range bc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(bc.entries, oldestKey)
		delete(bc.accessTime, oldestKey)
		log.Debugf("Evicted board '%s' from cache", oldestKey)
	}
}

package cache

import "sync"

var _ SizeCache = (*UnboundedCache)(nil)

// A [SizeCache] without eviction: every stored size stays cached for
// the life of the cache. Memory grows with each distinct font size,
// so only use it when the set of sizes is known to be limited.
type UnboundedCache struct {
	mutex sync.RWMutex
	entries map[int]map[rune]float64
}

// Creates a new, empty [UnboundedCache].
func NewUnbounded() *UnboundedCache {
	return &UnboundedCache {
		entries: make(map[int]map[rune]float64, 16),
	}
}

// Satisfies the [SizeCache] interface.
func (self *UnboundedCache) Lookup(fontSize int) (map[rune]float64, bool) {
	self.mutex.RLock()
	widths, found := self.entries[fontSize]
	self.mutex.RUnlock()
	return widths, found
}

// Satisfies the [SizeCache] interface.
func (self *UnboundedCache) Store(fontSize int, widths map[rune]float64) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, alreadyStored := self.entries[fontSize]
	if alreadyStored { return }
	self.entries[fontSize] = widths
}

// Satisfies the [SizeCache] interface.
func (self *UnboundedCache) NumSizes() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.entries)
}

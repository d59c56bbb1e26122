package cache

import "sync"

var _ SizeCache = (*FIFOCache)(nil)

type fifoEntry struct {
	widths map[rune]float64
	seq uint64 // insertion sequence number, lowest is oldest
}

// A bounded [SizeCache] with first-in first-out eviction: when an
// insertion pushes the number of cached sizes above the limit, the
// earliest inserted surviving entry is removed. Exactly one eviction
// per insertion that crosses the limit.
type FIFOCache struct {
	mutex sync.RWMutex
	entries map[int]*fifoEntry
	nextSeq uint64
	limit int
}

// Creates a new [FIFOCache] bounded to the given number of cached
// font sizes. Non-positive limits will panic.
func NewFIFO(limit int) *FIFOCache {
	if limit <= 0 { panic("limit <= 0") } // likely a dev mistake
	return &FIFOCache {
		entries: make(map[int]*fifoEntry, limit + 1),
		limit: limit,
	}
}

// Satisfies the [SizeCache] interface.
func (self *FIFOCache) Lookup(fontSize int) (map[rune]float64, bool) {
	self.mutex.RLock()
	entry, found := self.entries[fontSize]
	self.mutex.RUnlock()
	if !found { return nil, false }
	return entry.widths, true
}

// Satisfies the [SizeCache] interface.
func (self *FIFOCache) Store(fontSize int, widths map[rune]float64) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, alreadyStored := self.entries[fontSize]
	if alreadyStored { return } // racing duplicate, keep insertion order
	self.entries[fontSize] = &fifoEntry{ widths: widths, seq: self.nextSeq }
	self.nextSeq += 1
	if len(self.entries) <= self.limit { return }

	// over the limit, evict the oldest entry
	oldestSeq := ^uint64(0)
	oldestSize := 0
	for size, entry := range self.entries {
		if entry.seq < oldestSeq {
			oldestSeq = entry.seq
			oldestSize = size
		}
	}
	delete(self.entries, oldestSize)
}

// Satisfies the [SizeCache] interface.
func (self *FIFOCache) NumSizes() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.entries)
}

package cache

import "sync"
import "sync/atomic"

var _ SizeCache = (*PopularityCache)(nil)

type popularityEntry struct {
	widths map[rune]float64
	seq uint64 // insertion sequence number, for tie-breaks
	readCount uint32 // bumped on every hit. Concurrent-safe.
}

// Must be called on every cache hit so eviction has something
// meaningful to compare. Concurrent-safe.
func (self *popularityEntry) bumpReadCount() {
	atomic.AddUint32(&self.readCount, 1)
}

func (self *popularityEntry) reads() uint32 {
	return atomic.LoadUint32(&self.readCount)
}

// A bounded [SizeCache] with popularity-based eviction: every hit on
// a cached size bumps its read count, and when an insertion pushes
// the number of cached sizes above the limit, the least read entry
// among the pre-existing ones is removed, breaking ties in favor of
// evicting the oldest insertion. The entry being inserted is always
// admitted; it starts with zero reads but is never its own victim.
type PopularityCache struct {
	mutex sync.RWMutex
	entries map[int]*popularityEntry
	nextSeq uint64
	limit int
}

// Creates a new [PopularityCache] bounded to the given number of
// cached font sizes. Non-positive limits will panic.
func NewPopularity(limit int) *PopularityCache {
	if limit <= 0 { panic("limit <= 0") } // likely a dev mistake
	return &PopularityCache {
		entries: make(map[int]*popularityEntry, limit + 1),
		limit: limit,
	}
}

// Satisfies the [SizeCache] interface.
func (self *PopularityCache) Lookup(fontSize int) (map[rune]float64, bool) {
	self.mutex.RLock()
	entry, found := self.entries[fontSize]
	self.mutex.RUnlock()
	if !found { return nil, false }
	entry.bumpReadCount()
	return entry.widths, true
}

// Satisfies the [SizeCache] interface.
func (self *PopularityCache) Store(fontSize int, widths map[rune]float64) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, alreadyStored := self.entries[fontSize]
	if alreadyStored { return } // racing duplicate, keep read counts
	self.entries[fontSize] = &popularityEntry{ widths: widths, seq: self.nextSeq }
	self.nextSeq += 1
	if len(self.entries) <= self.limit { return }

	// over the limit, evict the least read pre-existing entry,
	// oldest first on ties
	var victimSize int
	var victimEntry *popularityEntry
	for size, entry := range self.entries {
		if size == fontSize { continue } // never the one just admitted
		if victimEntry == nil {
			victimSize, victimEntry = size, entry
			continue
		}
		reads := entry.reads()
		victimReads := victimEntry.reads()
		if reads < victimReads || (reads == victimReads && entry.seq < victimEntry.seq) {
			victimSize, victimEntry = size, entry
		}
	}
	delete(self.entries, victimSize)
}

// Satisfies the [SizeCache] interface.
func (self *PopularityCache) NumSizes() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.entries)
}

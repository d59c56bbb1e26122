package cache

import "sync"
import "testing"

func TestPopularityCache(t *testing.T) {
	cache := NewPopularity(2)

	cache.Store(12, testWidths(72.0))
	cache.Store(18, testWidths(108.0))

	// size 12 read five times, size 18 once
	for i := 0; i < 5; i++ {
		_, found := cache.Lookup(12)
		if !found { t.Fatal("expected to find size 12") }
	}
	_, found := cache.Lookup(18)
	if !found { t.Fatal("expected to find size 18") }

	// inserting a third size must evict the least read entry (18),
	// not the most read one, and never the entry being inserted
	cache.Store(24, testWidths(144.0))
	if cache.NumSizes() != 2 { t.Fatalf("expected 2 sizes, got %d", cache.NumSizes()) }
	_, found = cache.Lookup(18)
	if found { t.Fatal("expected size 18 to be evicted") }
	_, found = cache.Lookup(12)
	if !found { t.Fatal("expected size 12 to survive") }
	widths, found := cache.Lookup(24)
	if !found { t.Fatal("expected size 24 to survive") }
	if widths['x'] != 144.0 { t.Fatalf("expected 144.0, got %f", widths['x']) }
}

func TestPopularityCacheTieBreak(t *testing.T) {
	cache := NewPopularity(2)

	// two entries with equal read counts: the oldest insertion loses
	cache.Store(12, testWidths(72.0))
	cache.Store(18, testWidths(108.0))
	cache.Lookup(12)
	cache.Lookup(18)

	cache.Store(24, testWidths(144.0))
	_, found := cache.Lookup(12)
	if found { t.Fatal("expected size 12 to be evicted on tie") }
	_, found = cache.Lookup(18)
	if !found { t.Fatal("expected size 18 to survive") }
}

func TestPopularityCacheFreshEntriesTurnOver(t *testing.T) {
	cache := NewPopularity(1)

	// even when every cached entry has reads, a fresh zero-read
	// insertion must still be admitted
	cache.Store(12, testWidths(72.0))
	cache.Lookup(12)
	cache.Store(18, testWidths(108.0))
	_, found := cache.Lookup(12)
	if found { t.Fatal("expected size 12 to be evicted") }
	_, found = cache.Lookup(18)
	if !found { t.Fatal("expected size 18 to be admitted") }
}

func TestPopularityCacheConcurrentReads(t *testing.T) {
	cache := NewPopularity(4)
	cache.Store(12, testWidths(72.0))
	cache.Store(18, testWidths(108.0))

	var waitGroup sync.WaitGroup
	for i := 0; i < 8; i++ {
		waitGroup.Add(1)
		size := 12
		if i%2 == 0 { size = 18 }
		go func(fontSize int) {
			defer waitGroup.Done()
			for n := 0; n < 100; n++ {
				widths, found := cache.Lookup(fontSize)
				if !found || widths == nil { t.Error("expected cached widths") }
			}
		}(size)
	}
	waitGroup.Wait()
}

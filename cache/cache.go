package cache

// The interface that fontmet metrics use to store and retrieve width
// tables derived on demand. Each implementation embodies one eviction
// policy; the policy is the only behavioral difference between them.
//
// Implementations must be safe for concurrent use. Two callers racing
// to fill the same missing size may both derive the table redundantly;
// that is fine as long as the cache structure stays consistent, so
// Store keeps the first stored table for a size and ignores later
// duplicates (derivation is deterministic, so duplicates are identical
// anyway, but keeping the first preserves insertion order and read
// counts).
type SizeCache interface {
	// Returns the width table cached for the given font size, if any.
	// A hit updates the entry's read bookkeeping where the policy
	// tracks it. The returned map must be treated as read-only.
	Lookup(fontSize int) (map[rune]float64, bool)

	// Stores the width table derived for the given font size, evicting
	// another entry if the policy is bounded and the insertion crossed
	// its limit. No-op if the size is already cached.
	Store(fontSize int, widths map[rune]float64)

	// Returns the number of font sizes currently cached.
	NumSizes() int
}

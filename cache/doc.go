// cache implements the on-demand width caches used by fontmet, one
// per eviction policy: FIFO bounded, popularity bounded and unbounded.
//
// Caches are keyed by font size, and each entry holds the full
// character width table derived for that size; the size is the unit
// of caching and eviction, never individual characters. All caches
// are concurrent-safe, though not optimized for heavily concurrent
// scenarios: mutation happens under a single coarse lock.
//
// You rarely need this package directly; fontmet's builder creates
// the right cache for the policy you pick.
package cache

package fontmet

import "github.com/tinne26/fontmet/cache"

// How lookups at sizes outside the precalculated tables are resolved.
// Chosen at the [OnDemandStep] of the builder, frozen on Build().
type onDemandPolicy uint8

const (
	policyDisabled onDemandPolicy = iota
	policyUncached
	policyFIFO
	policyPopularity
	policyUnlimited
)

// Metrics resolves the rendered width of characters at arbitrary font
// sizes. Instances are created through [Builder]; once built they are
// immutable apart from the internal on-demand cache, and all methods
// are safe for concurrent use.
type Metrics struct {
	baseline Baseline
	table map[int]map[rune]float64 // frozen on Build(), read without locking
	cache cache.SizeCache // nil unless a caching policy was chosen
	policy onDemandPolicy
}

// Returns the font size of the baseline widths.
func (self *Metrics) BaselineSize() int { return self.baseline.fontSize }

// Whether the given font size has a ready-made width table, either as
// the baseline or through precalculation. Lookups at such sizes never
// touch the on-demand machinery.
func (self *Metrics) HasPreCalculated(fontSize int) bool {
	_, found := self.table[fontSize]
	return found
}

// Width returns the width of the given character at the given font
// size. The boolean reports whether the width could be resolved at
// all: unsupported characters, and any size outside the ready-made
// tables when on-demand computation is disabled, yield (0, false, nil)
// rather than an error.
//
// Fails with [ErrNilArgument] if char is not a valid Unicode scalar
// value, and with [ErrInvalidArgument] if fontSize is not positive.
//
// Resolution order: ready-made table for the exact size first, then
// the on-demand cache (if any), then derivation from the baseline,
// caching the derived table if the policy calls for it.
func (self *Metrics) Width(char rune, fontSize int) (float64, bool, error) {
	if !validChar(char) {
		return 0, false, nilArg("character must be a valid Unicode scalar value")
	}
	if fontSize <= 0 {
		return 0, false, invalidArg("fontSize must be positive")
	}

	// exact hit on the baseline or a precalculated size
	if widths, found := self.table[fontSize]; found {
		width, supported := widths[char]
		return width, supported, nil
	}

	switch self.policy {
	case policyDisabled:
		return 0, false, nil
	case policyUncached:
		width, supported := self.baseline.Scale(char, fontSize)
		return width, supported, nil
	}

	// cached on-demand policies
	if widths, found := self.cache.Lookup(fontSize); found {
		width, supported := widths[char]
		return width, supported, nil
	}
	if !self.baseline.HasChar(char) {
		// unsupported characters never populate the cache
		return 0, false, nil
	}
	widths := self.baseline.scaleAll(fontSize)
	self.cache.Store(fontSize, widths)
	return widths[char], true, nil
}

// StringWidth returns the total width of the given text at the given
// font size, adding up the widths of its characters through the same
// resolution path as [Metrics.Width]. If any character is unsupported
// the total can't be trusted, so the result is (0, false, nil). Empty
// text is zero width.
//
// The same argument errors as [Metrics.Width] apply.
func (self *Metrics) StringWidth(text string, fontSize int) (float64, bool, error) {
	if fontSize <= 0 {
		return 0, false, invalidArg("fontSize must be positive")
	}
	total := 0.0
	for _, char := range text {
		width, supported, err := self.Width(char, fontSize)
		if err != nil { return 0, false, err }
		if !supported { return 0, false, nil }
		total += width
	}
	return total, true, nil
}

package fontmet

import "math"

import "github.com/tinne26/fontmet/cache"

// Builder returns the first step of the staged construction protocol
// for [Metrics]:
//   Builder() → [BaselineStep] → [PreCalculateStep] → [OnDemandStep] →
//   [BuildStep] → [Metrics]
//
// Each step only exposes the operations that are legal at that point,
// so misordered configuration doesn't compile.
func Builder() BaselineStep { return BaselineStep{} }

// Configuration shared by all builder steps. Pointers to it flow from
// step to step; it is never touched again after Build().
type builderData struct {
	baseline Baseline
	table map[int]map[rune]float64
}

// The step that establishes the baseline: the one font size whose
// character widths are supplied directly by the caller and used as
// ground truth for deriving every other size. See [Builder]().
type BaselineStep struct{}

// Sets the baseline widths (typically in typographic points) measured
// at the given font size. The map is copied, so the caller may reuse
// or mutate it freely after the call.
//
// Fails with [ErrInvalidArgument] if fontSize is not positive, or if
// widths is nil, empty, or contains an invalid character key or a
// negative or non-finite width. On failure nothing is retained.
func (BaselineStep) SetBaseline(fontSize int, widths map[rune]float64) (PreCalculateStep, error) {
	if fontSize <= 0 {
		return PreCalculateStep{}, invalidArg("fontSize must be positive")
	}
	if widths == nil {
		return PreCalculateStep{}, invalidArg("widths must not be nil")
	}
	if len(widths) == 0 {
		return PreCalculateStep{}, invalidArg("widths must not be empty")
	}

	copied := make(map[rune]float64, len(widths))
	for char, width := range widths {
		if !validChar(char) {
			return PreCalculateStep{}, invalidArg("widths contains an invalid character key")
		}
		if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
			return PreCalculateStep{}, invalidArg("widths contains a negative or non-finite width")
		}
		copied[char] = width
	}

	data := &builderData{
		baseline: Baseline{ fontSize: fontSize, widths: copied },
		table: map[int]map[rune]float64{ fontSize: copied },
	}
	return PreCalculateStep{ data: data }, nil
}

// The step that decides which font sizes, beyond the baseline, get
// their width tables computed eagerly at build time. Precalculated
// sizes answer lookups as authoritatively as the baseline itself and
// are never subject to cache eviction; the trade-off is memory
// footprint against lookup performance.
type PreCalculateStep struct {
	data *builderData
}

// Eagerly derives and stores the full width table for each given font
// size. Sizes equal to the baseline size or repeated in the list are
// deduplicated. Calling it with no sizes is equivalent to
// [PreCalculateStep.SkipPreCalculation].
//
// Fails with [ErrInvalidArgument] if any size is not positive; in that
// case no size is expanded, not even the valid ones.
func (self PreCalculateStep) PreCalculate(sizes ...int) (OnDemandStep, error) {
	for _, size := range sizes {
		if size <= 0 { return OnDemandStep{}, invalidArg("fontSize must be positive") }
	}
	for _, size := range sizes {
		_, alreadyPresent := self.data.table[size]
		if alreadyPresent { continue }
		self.data.table[size] = self.data.baseline.scaleAll(size)
	}
	return OnDemandStep{ data: self.data }, nil
}

// Skips precalculation, leaving the baseline as the only size with a
// ready-made width table.
func (self PreCalculateStep) SkipPreCalculation() OnDemandStep {
	return OnDemandStep{ data: self.data }
}

// The step that decides what happens when a width is requested at a
// font size that has no precalculated table: whether it is computed
// on demand at all, and if so, whether and how the computed table is
// cached. The five choices are mutually exclusive and all lead to the
// final [BuildStep].
type OnDemandStep struct {
	data *builderData
}

// Disables on-demand computation: lookups at any size absent from the
// precalculated tables report the width as unsupported. Use this when
// every expected size has been precalculated.
func (self OnDemandStep) Disable() BuildStep {
	return BuildStep{ data: self.data, policy: policyDisabled }
}

// Enables on-demand computation without caching: widths for sizes
// outside the precalculated tables are derived from the baseline on
// every single lookup. Use this when the rare non-precalculated sizes
// don't warrant the memory.
func (self OnDemandStep) Enable() BuildStep {
	return BuildStep{ data: self.data, policy: policyUncached }
}

// Enables on-demand computation with a bounded cache using first-in
// first-out eviction: once more than limit sizes are cached, each new
// size evicts the earliest inserted one. Use this when all
// non-precalculated sizes are roughly equally common.
//
// Fails with [ErrInvalidArgument] if limit is not positive.
func (self OnDemandStep) EnableWithFIFOCache(limit int) (BuildStep, error) {
	if limit <= 0 { return BuildStep{}, invalidArg("cache limit must be positive") }
	return BuildStep{ data: self.data, policy: policyFIFO, limit: limit }, nil
}

// Enables on-demand computation with a bounded cache using popularity
// eviction: each cached size counts its reads, and once more than
// limit sizes are cached, each new size evicts the least read one
// (oldest insertion on ties). Use this when some non-precalculated
// sizes are much more common than others.
//
// Fails with [ErrInvalidArgument] if limit is not positive.
func (self OnDemandStep) EnableWithPopularityCache(limit int) (BuildStep, error) {
	if limit <= 0 { return BuildStep{}, invalidArg("cache limit must be positive") }
	return BuildStep{ data: self.data, policy: policyPopularity, limit: limit }, nil
}

// Enables on-demand computation with an unbounded cache that never
// evicts. Use at your own risk: memory grows with every distinct
// font size ever requested.
func (self OnDemandStep) EnableWithUnlimitedCache() BuildStep {
	return BuildStep{ data: self.data, policy: policyUnlimited }
}

// The final step. See [BuildStep.Build].
type BuildStep struct {
	data *builderData
	policy onDemandPolicy
	limit int
}

// Builds the [Metrics] instance. The width tables and the policy
// chosen in the previous steps are frozen at this point; the returned
// instance is immutable apart from its internal cache and safe for
// concurrent use. Never fails.
func (self BuildStep) Build() *Metrics {
	metrics := &Metrics{
		baseline: self.data.baseline,
		table: self.data.table,
		policy: self.policy,
	}
	switch self.policy {
	case policyFIFO:
		metrics.cache = cache.NewFIFO(self.limit)
	case policyPopularity:
		metrics.cache = cache.NewPopularity(self.limit)
	case policyUnlimited:
		metrics.cache = cache.NewUnbounded()
	}
	return metrics
}

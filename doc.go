// fontmet is a package for resolving character widths at arbitrary font
// sizes from widths measured at a single baseline size. It is meant for
// typesetting and layout code that needs fast, repeated width lookups
// across many sizes without re-measuring every glyph at every size.
//
// Usage revolves around a staged builder and one lookup method.
//
// First, you establish a baseline (a font size and the widths of the
// characters you support at that size):
//   step, err := fontmet.Builder().SetBaseline(16, widths)
//   if err != nil { ... }
//
// Then you decide how sizes other than the baseline are resolved:
//   metrics := step.SkipPreCalculation().EnableWithUnlimitedCache().Build()
//
// Finally, you query widths:
//   width, ok, err := metrics.Width('g', 24)
//
// Widths for non-baseline sizes are derived through linear proportional
// scaling, since font metrics scale linearly with point size. Whether
// derived widths are computed eagerly, on demand, cached or bounded is
// entirely up to the builder stages; see [PreCalculateStep] and
// [OnDemandStep] for the available trade-offs.
//
// If you don't have baseline widths at hand, the fontmet/font subpackage
// can measure them from a real .ttf or .otf font.
package fontmet

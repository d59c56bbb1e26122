package fontmet

// A Baseline associates a font size with the widths measured for each
// supported character at that size. It is the ground truth that widths
// at every other size are derived from.
//
// Baselines are created through [BaselineStep.SetBaseline] and are
// immutable afterwards; all methods are safe for concurrent use.
type Baseline struct {
	fontSize int
	widths map[rune]float64
}

// Returns the font size the baseline widths were measured at.
func (self *Baseline) FontSize() int { return self.fontSize }

// Returns the number of characters the baseline has widths for.
func (self *Baseline) NumChars() int { return len(self.widths) }

// Whether the baseline has a width for the given character.
func (self *Baseline) HasChar(char rune) bool {
	_, found := self.widths[char]
	return found
}

// Returns the width of the given character at the given target size,
// derived from the baseline width through linear proportional scaling
// (width × targetSize / baselineSize). The boolean is false if the
// character is not part of the baseline.
//
// Pure and deterministic. The target size is expected to be positive;
// validation belongs to the callers with an error path.
func (self *Baseline) Scale(char rune, targetSize int) (float64, bool) {
	width, found := self.widths[char]
	if !found { return 0, false }
	if targetSize == self.fontSize { return width, true }
	return width*float64(targetSize)/float64(self.fontSize), true
}

// Derives the full width table for the given target size, scaling
// every baseline character. Used both for eager precalculation and
// for on-demand cache fills, so the two paths can never disagree.
func (self *Baseline) scaleAll(targetSize int) map[rune]float64 {
	widths := make(map[rune]float64, len(self.widths))
	for char := range self.widths {
		width, _ := self.Scale(char, targetSize)
		widths[char] = width
	}
	return widths
}

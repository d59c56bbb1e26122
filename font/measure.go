package font

import "errors"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Measures the advance width of each distinct character in chars at
// the given font size, in points, and returns the results as a map
// ready to be passed to fontmet's builder as a baseline.
//
// Characters that the font has no glyph for are silently skipped; use
// [GetMissingRunes]() beforehand if you need to detect them. If no
// character could be measured at all, an error is returned. Hinting
// is not applied, as fontmet scales widths linearly and hinted values
// don't scale linearly.
func Measure(sfntFont *sfnt.Font, fontSize int, chars string) (map[rune]float64, error) {
	if sfntFont == nil {
		return nil, errors.New("nil font")
	}
	if fontSize <= 0 {
		return nil, errors.New("fontSize must be positive")
	}

	buffer := &sfnt.Buffer{}
	ppem := fixed.I(fontSize)
	widths := make(map[rune]float64, len(chars))
	for _, char := range chars {
		_, alreadyMeasured := widths[char]
		if alreadyMeasured { continue }
		index, err := sfntFont.GlyphIndex(buffer, char)
		if err != nil { return nil, err }
		if index == 0 { continue } // no glyph for this character
		advance, err := sfntFont.GlyphAdvance(buffer, index, ppem, font.HintingNone)
		if err != nil { return nil, err }
		widths[char] = float64(advance)/64.0 // 26.6 fixed point to points
	}
	if len(widths) == 0 {
		return nil, errors.New("no measurable characters")
	}
	return widths, nil
}

// Calls [Measure]() with the printable ASCII range (space to '~'),
// the most common baseline character set for latin text layouts.
func MeasureASCII(sfntFont *sfnt.Font, fontSize int) (map[rune]float64, error) {
	ascii := make([]rune, 0, 95)
	for char := rune(' '); char <= '~'; char++ {
		ascii = append(ascii, char)
	}
	return Measure(sfntFont, fontSize, string(ascii))
}

package font

import "errors"

import "golang.org/x/image/font/sfnt"

// Returned by the property getters when the requested naming table
// entry is missing or empty.
var ErrNotFound = errors.New("font property not found or empty")

// Returns the full name of the given font (e.g. "Go Regular"). If the
// information is missing, [ErrNotFound] will be returned. Other errors
// are also possible (e.g., if the font naming table is invalid).
func GetName(font *sfnt.Font) (string, error) {
	return getProperty(font, sfnt.NameIDFull)
}

// Returns the family name of the given font (e.g. "Go"). If the
// information is missing, [ErrNotFound] will be returned.
func GetFamily(font *sfnt.Font) (string, error) {
	return getProperty(font, sfnt.NameIDFamily)
}

func getProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	str, err := font.Name(nil, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the runes in the given text that the font has no glyph for.
// Repeated runes in the input may appear repeated in the result too.
//
// When building a baseline from a dynamically loaded font, it is good
// practice to use this function first to make sure the font covers all
// the characters you intend to measure.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := &sfnt.Buffer{}
	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}

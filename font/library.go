package font

import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"

// An alias of [sfnt.Font] so code using this package doesn't need to
// import x/image/font/sfnt explicitly for the common operations.
type Font = sfnt.Font

// A collection of parsed fonts accessible by name.
//
// The goal of a library is to make it easy to parse fonts in bulk and
// keep them in a single place while baselines are measured from them.
// If you only deal with one or two fonts, you are generally better off
// avoiding the abstraction.
type Library struct {
	fonts map[string]*Font
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make(map[string]*Font),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
//
// If you don't know the names of your fonts, you can print them with
// [Library.EachFont](), or use [GetName]() directly on a parsed font.
func (self *Library) GetFont(name string) *Font {
	font, found := self.fonts[name]
	if found { return font }
	return nil
}

// Removes the font with the given name from the library. Returns
// false if no font had that name.
func (self *Library) RemoveFont(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// An error returned by the library parsing functions when a font is
// not added due to its name already being present in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

// Parses a font from raw bytes and adds it to the library. Returns
// the name of the added font and any possible error; if error == nil,
// the name is non-empty. The bytes must not be modified while the
// font is in use.
//
// If a font with the same name has already been parsed or added,
// [ErrAlreadyPresent] will be returned.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromBytes]() for font filepaths.
func (self *Library) ParseFromPath(path string) (string, error) {
	font, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// Walks the given directory of the given filesystem non-recursively
// and adds all the .ttf and .otf fonts in it. Returns the number of
// fonts added, the number of fonts skipped (because a font with the
// same name was already in the library) and any error that might
// happen during the process.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }
	for _, entry := range entries {
		if entry.IsDir() { continue }
		path := dirName + "/" + entry.Name()
		if !hasValidFontExtension(path) { continue }
		_, err := self.ParseFromFS(filesys, path)
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}

// The equivalent of [Library.ParseFromPath]() for embedded filesystems.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	font, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// Special error that can be used with [Library.EachFont]() to break
// early. When used, the method will stop but still return nil.
var ErrBreakEach = errors.New("EachFont() early break")

// Calls the given function for each font in the library, passing their
// names and content as arguments, in pseudo-random order.
//
// If the given function returns a non-nil error, the method stops and
// returns that error immediately, with the only exception of
// [ErrBreakEach]. Otherwise, EachFont always returns nil.
func (self *Library) EachFont(fontFunc func(string, *Font) error) error {
	for name, font := range self.fonts {
		err := fontFunc(name, font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

func (self *Library) addNewFont(font *Font, name string) error {
	if self.HasFont(name) { return ErrAlreadyPresent }
	self.fonts[name] = font
	return nil
}

package font

import "os"
import "io"
import "io/fs"
import "errors"
import "strings"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](), but also including the font name in the
// returned values. The bytes must not be modified while the font is
// in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", err
	}
	fontName, err := GetName(newFont)
	return newFont, fontName, err
}

// Attempts to parse the font located at the given filepath and returns
// it along its name and any possible error. Supported formats are .ttf
// and .otf.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	return parseFrom(path, func() (fs.File, error) { return os.Open(path) })
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	return parseFrom(path, func() (fs.File, error) { return filesys.Open(path) })
}

// ---- helpers ----

func parseFrom(path string, open func() (fs.File, error)) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := open()
	if err != nil {
		return nil, "", err
	}
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil {
		return nil, "", err
	}
	return ParseFromBytes(fontBytes)
}

// Whether the font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ttf" || ext == ".otf"
}

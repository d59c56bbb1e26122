package fontmet

import "errors"
import "fmt"
import "unicode"
import "unicode/utf16"

// All builder and lookup failures wrap one of these two sentinels, so
// callers can classify them with [errors.Is]. Every error is raised
// synchronously at the offending call and leaves the builder or metrics
// state untouched; there is nothing to recover or retry.
var (
	// Reported for out-of-range or malformed arguments: non-positive
	// font sizes or cache limits, nil or empty baseline maps, invalid
	// character keys, negative or non-finite widths.
	ErrInvalidArgument = errors.New("invalid argument")

	// Reported by [Metrics.Width] when the given character is absent,
	// that is, not a valid Unicode scalar value.
	ErrNilArgument = errors.New("nil argument")
)

func invalidArg(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, detail)
}

func nilArg(detail string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, detail)
}

// Whether the given rune is a valid Unicode scalar value. Surrogates
// and out-of-range values count as "absent" characters, as runes are
// value types and can't be nil.
func validChar(char rune) bool {
	if char < 0 || char > unicode.MaxRune { return false }
	return !utf16.IsSurrogate(char)
}

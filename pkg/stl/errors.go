package stl

import (
	"errors"
	"fmt"
)

// ErrNotSTL reports input that cannot be decoded as STL at all: text input
// missing the solid/facet keywords, binary input too short for the 84-byte
// header, or input the detector cannot place in either encoding.
var ErrNotSTL = errors.New("not an STL file")

// FormatMismatchError reports a binary file whose declared facet count
// disagrees with the number of whole 50-byte records its size allows.
type FormatMismatchError struct {
	Declared int // facet count from the header
	Actual   int // whole records present after the header
}

// Error implements error.
func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("facet count mismatch: header declares %d, body holds %d records", e.Declared, e.Actual)
}

package stl

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/Faultbox/stlkit/pkg/geom"
)

// Binary layout: an 80-byte name field and a little-endian uint32 facet
// count, then one 50-byte record per facet — 12 bytes of stored normal
// (ignored), nine float32 vertex coordinates, and a 2-byte attribute
// field (ignored).
const (
	binaryNameSize   = 80
	binaryHeaderSize = 84
	binaryRecordSize = 50
)

// nameCutset is the padding trimmed from the binary name field.
const nameCutset = "\x00 \t\n\r"

// parseBinary decodes the header and validates the record area before any
// facet is produced.
func parseBinary(data []byte, tol float32) (*Model, error) {
	if len(data) < binaryHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for a binary header", ErrNotSTL, len(data))
	}
	declared := int(binary.LittleEndian.Uint32(data[binaryNameSize:binaryHeaderSize]))
	body := data[binaryHeaderSize:]
	actual := len(body) / binaryRecordSize
	if len(body)%binaryRecordSize != 0 || declared != actual {
		return nil, &FormatMismatchError{Declared: declared, Actual: actual}
	}
	return &Model{
		Name:       cleanName(data[:binaryNameSize]),
		FacetCount: declared,
		Facets:     &binaryStream{body: body, tol: tol},
	}, nil
}

// cleanName extracts the solid name from the 80-byte field: a leading
// "solid " is dropped, padding is trimmed from both ends, and an empty
// result becomes "unknown".
func cleanName(field []byte) string {
	name := strings.TrimPrefix(string(field), "solid ")
	name = strings.Trim(name, nameCutset)
	if name == "" {
		return "unknown"
	}
	return name
}

// binaryStream pulls facets out of the fixed 50-byte records.
type binaryStream struct {
	body    []byte
	index   int // 1-based index of the last record read
	tol     float32
	pending *Result // second half of a degenerate double emission
}

// Next implements FacetStream.
func (s *binaryStream) Next() (Result, bool) {
	if s.pending != nil {
		item := *s.pending
		s.pending = nil
		return item, true
	}
	if len(s.body) < binaryRecordSize {
		return Result{}, false
	}
	rec := s.body[:binaryRecordSize]
	s.body = s.body[binaryRecordSize:]
	s.index++

	a := vertexFromRecord(rec, 12)
	b := vertexFromRecord(rec, 24)
	c := vertexFromRecord(rec, 36)
	return makeFacet(s.index, a, b, c, s.tol, &s.pending), true
}

// vertexFromRecord reads three little-endian float32s starting at off.
func vertexFromRecord(rec []byte, off int) geom.Vec3 {
	return geom.Vec3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(rec[off:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(rec[off+4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(rec[off+8:])),
	}
}

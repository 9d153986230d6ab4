// Package stl decodes STL ("stereolithography") triangle meshes in both
// the binary and ASCII encodings of the format.
//
// Decoding is lazy: Parse classifies the input and reads the header, and
// facets are pulled one at a time from the model's FacetStream. Collect
// drains a stream when the whole mesh is wanted at once.
package stl

import (
	"fmt"
	"os"

	"github.com/Faultbox/stlkit/pkg/geom"
)

// Facet is one triangle of a mesh: three vertices plus a unit normal.
// The stored on-disk normal is ignored; Normal is always recomputed from
// the vertices. A facet flagged degenerate by its Status carries the raw
// un-normalized cross product instead.
type Facet struct {
	A, B, C geom.Vec3 // vertices, in file order
	Normal  geom.Vec3
}

// StatusCode classifies the decode outcome of a single facet.
type StatusCode int

// Facet status codes.
const (
	StatusOK         StatusCode = iota
	StatusDegenerate            // collinear or coincident vertices, zero-length normal
)

// Status reports the decode outcome of one facet. Index is the 1-based
// position in encounter order.
type Status struct {
	Index int
	Code  StatusCode
}

// String renders the status in the classic reporting form.
func (s Status) String() string {
	if s.Code == StatusDegenerate {
		return fmt.Sprintf("skipped degenerate facet %d.", s.Index)
	}
	return fmt.Sprintf("facet %d OK", s.Index)
}

// Result is one item pulled from a FacetStream. Facet is nil for a
// degenerate-marker item.
type Result struct {
	Status Status
	Facet  *Facet
}

// FacetStream yields decoded facets lazily, in file order, single pass;
// an exhausted stream is not restartable. A degenerate facet produces two
// consecutive items sharing one Status: first a nil-facet marker, then a
// best-effort facet whose normal is the raw cross product.
type FacetStream interface {
	// Next returns the next stream item. ok is false once the stream is
	// exhausted; stopping early is always safe.
	Next() (item Result, ok bool)
}

// Model is a decoded STL header plus the stream of its facets.
type Model struct {
	Name       string // solid name, "unknown" when absent
	FacetCount int    // declared facet count (verified against size for binary)
	Facets     FacetStream
}

// Decoder decodes STL data. The zero value is ready to use: it detects
// the encoding structurally and rejects only exactly-zero-length normals.
type Decoder struct {
	// Detector picks the encoding. nil means StructureDetector.
	Detector Detector

	// Tolerance is the zero-length threshold handed to normalization;
	// 0 keeps the exact-zero rule.
	Tolerance float32
}

// Parse decodes a complete STL file held in memory. The returned model's
// stream reads from data; the caller must not mutate it while decoding.
func (d *Decoder) Parse(data []byte) (*Model, error) {
	det := d.Detector
	if det == nil {
		det = StructureDetector{}
	}
	switch det.Detect(data) {
	case FormatBinary:
		return parseBinary(data, d.Tolerance)
	case FormatText:
		return parseText(data, d.Tolerance)
	default:
		return nil, fmt.Errorf("%w: unrecognized layout", ErrNotSTL)
	}
}

// ParseFile reads path once in whole and decodes it.
func (d *Decoder) ParseFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL file: %w", err)
	}
	return d.Parse(data)
}

// Parse decodes data with a zero-value Decoder.
func Parse(data []byte) (*Model, error) {
	var d Decoder
	return d.Parse(data)
}

// ParseFile reads and decodes the STL file at path with a zero-value Decoder.
func ParseFile(path string) (*Model, error) {
	var d Decoder
	return d.ParseFile(path)
}

// makeFacet derives the facet for one record: edges u = b-a and v = c-b,
// normal = cross(u, v), normalized. A zero-length cross product marks the
// facet degenerate; the returned item is then the nil-facet marker and the
// best-effort facet is parked in *pending so the stream emits both.
func makeFacet(index int, a, b, c geom.Vec3, tol float32, pending **Result) Result {
	u := b.Sub(a)
	v := c.Sub(b)
	n := u.Cross(v)

	unitN, err := n.NormalizeTol(tol)
	if err != nil {
		st := Status{Index: index, Code: StatusDegenerate}
		*pending = &Result{Status: st, Facet: &Facet{A: a, B: b, C: c, Normal: n}}
		return Result{Status: st}
	}
	return Result{
		Status: Status{Index: index, Code: StatusOK},
		Facet:  &Facet{A: a, B: b, C: c, Normal: unitN},
	}
}

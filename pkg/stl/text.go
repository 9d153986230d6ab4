package stl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/stlkit/pkg/geom"
)

// ASCII grammar per facet, 21 whitespace-delimited tokens:
//
//	facet normal nx ny nz outer loop
//	vertex ax ay az vertex bx by bz vertex cx cy cz
//	endloop endfacet
//
// Only the facet keyword and the fixed vertex offsets 8..10, 12..14 and
// 16..18 are interpreted.
const textFacetTokens = 21

// parseText tokenizes the whole buffer and extracts the header.
func parseText(data []byte, tol float32) (*Model, error) {
	tokens := strings.Fields(string(data))
	solid := indexOfToken(tokens, "solid")
	facet := indexOfToken(tokens, "facet")
	if solid < 0 || facet < 0 {
		return nil, fmt.Errorf("%w: missing solid/facet keywords", ErrNotSTL)
	}

	name := "unknown"
	if solid+1 < facet {
		name = strings.Join(tokens[solid+1:facet], " ")
	}

	count := 0
	for _, tok := range tokens {
		if tok == "facet" {
			count++
		}
	}

	return &Model{
		Name:       name,
		FacetCount: count,
		Facets:     &textStream{tokens: tokens[facet:], tol: tol},
	}, nil
}

func indexOfToken(tokens []string, want string) int {
	for i, tok := range tokens {
		if tok == want {
			return i
		}
	}
	return -1
}

// textStream pulls facets out of the token list, one 21-token block per
// facet. Fixed-offset parsing: a malformed or truncated block ends the
// stream rather than erroring (known limitation of the grammar handling).
type textStream struct {
	tokens  []string
	index   int // 1-based index of the last block read
	tol     float32
	pending *Result // second half of a degenerate double emission
}

// Next implements FacetStream.
func (s *textStream) Next() (Result, bool) {
	if s.pending != nil {
		item := *s.pending
		s.pending = nil
		return item, true
	}
	if len(s.tokens) < textFacetTokens || s.tokens[0] != "facet" {
		return Result{}, false
	}

	a, okA := s.vertexAt(8)
	b, okB := s.vertexAt(12)
	c, okC := s.vertexAt(16)
	if !okA || !okB || !okC {
		s.tokens = nil
		return Result{}, false
	}

	s.tokens = s.tokens[textFacetTokens:]
	s.index++
	return makeFacet(s.index, a, b, c, s.tol, &s.pending), true
}

// vertexAt parses the three coordinate tokens starting at off.
func (s *textStream) vertexAt(off int) (geom.Vec3, bool) {
	x, errX := strconv.ParseFloat(s.tokens[off], 32)
	y, errY := strconv.ParseFloat(s.tokens[off+1], 32)
	z, errZ := strconv.ParseFloat(s.tokens[off+2], 32)
	if errX != nil || errY != nil || errZ != nil {
		return geom.Vec3{}, false
	}
	return geom.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}, true
}

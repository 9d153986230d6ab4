package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/stlkit/pkg/geom"
	"github.com/Faultbox/stlkit/pkg/stl"
)

func TestWritePOV_DeduplicatesVertices(t *testing.T) {
	// Two triangles sharing the edge (1,0,0)-(0,1,0): 4 unique vertices.
	facets := []stl.Facet{
		{
			A: geom.Vec3{},
			B: geom.Vec3{X: 1},
			C: geom.Vec3{Y: 1},
		},
		{
			A: geom.Vec3{X: 1},
			B: geom.Vec3{X: 1, Y: 1},
			C: geom.Vec3{Y: 1},
		},
	}

	var buf bytes.Buffer
	if err := writePOV(&buf, "plate", facets); err != nil {
		t.Fatalf("writePOV failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "mesh2 {") {
		t.Error("expected a mesh2 object")
	}
	if !strings.Contains(out, "vertex_vectors {\n    4,") {
		t.Errorf("expected 4 deduplicated vertices, got:\n%s", out)
	}
	if !strings.Contains(out, "face_indices {\n    2,") {
		t.Errorf("expected 2 faces, got:\n%s", out)
	}
	// The second face reuses vertices 1 and 2 from the first.
	if !strings.Contains(out, "<0, 1, 2>") || !strings.Contains(out, "<1, 3, 2>") {
		t.Errorf("unexpected face indices:\n%s", out)
	}
}

func TestWritePOV_SwapsYZ(t *testing.T) {
	facets := []stl.Facet{
		{
			A: geom.Vec3{X: 1, Y: 2, Z: 3},
			B: geom.Vec3{X: 4, Y: 5, Z: 6},
			C: geom.Vec3{X: 7, Y: 8, Z: 9},
		},
	}

	var buf bytes.Buffer
	if err := writePOV(&buf, "axes", facets); err != nil {
		t.Fatalf("writePOV failed: %v", err)
	}
	out := buf.String()

	// POV-Ray is y-up left-handed, so (x, y, z) is written <x, z, y>.
	for _, want := range []string{"<1, 3, 2>", "<4, 6, 5>", "<7, 9, 8>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected vertex %s in output:\n%s", want, out)
		}
	}
}

func TestWritePOV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := writePOV(&buf, "empty", nil); err != nil {
		t.Fatalf("writePOV failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "vertex_vectors {\n    0,") {
		t.Errorf("expected empty vertex list, got:\n%s", out)
	}
}

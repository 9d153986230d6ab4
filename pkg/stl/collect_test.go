package stl

import (
	"testing"

	"github.com/Faultbox/stlkit/pkg/geom"
)

func TestCollect_DropsDegenerateFacets(t *testing.T) {
	data := createBinarySTL("mixed", [][9]float32{
		{0, 0, 0, 1, 0, 0, 0, 1, 0},
		{0, 0, 0, 1, 0, 0, 2, 0, 0}, // collinear
		{0, 0, 1, 1, 0, 1, 0, 1, 1},
	}, -1)

	model, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var statuses []string
	facets := Collect(model.Facets, func(s Status) {
		statuses = append(statuses, s.String())
	})

	if len(facets) != 2 {
		t.Fatalf("expected 2 collected facets, got %d", len(facets))
	}
	if facets[0].B != (geom.Vec3{X: 1}) || facets[1].A != (geom.Vec3{Z: 1}) {
		t.Errorf("unexpected surviving facets: %+v", facets)
	}

	// The degenerate facet surfaces its status twice: once for the marker,
	// once for the best-effort payload.
	expected := []string{
		"facet 1 OK",
		"skipped degenerate facet 2.",
		"skipped degenerate facet 2.",
		"facet 3 OK",
	}
	if len(statuses) != len(expected) {
		t.Fatalf("expected %d status reports, got %d: %v", len(expected), len(statuses), statuses)
	}
	for i := range expected {
		if statuses[i] != expected[i] {
			t.Errorf("status %d: expected %q, got %q", i, expected[i], statuses[i])
		}
	}
}

func TestCollect_NilReport(t *testing.T) {
	data := createTextSTL("quiet", [][9]float32{
		{0, 0, 0, 1, 0, 0, 0, 1, 0},
	})
	model, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	facets := Collect(model.Facets, nil)
	if len(facets) != 1 {
		t.Errorf("expected 1 facet, got %d", len(facets))
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{Status{Index: 1, Code: StatusOK}, "facet 1 OK"},
		{Status{Index: 42, Code: StatusOK}, "facet 42 OK"},
		{Status{Index: 7, Code: StatusDegenerate}, "skipped degenerate facet 7."},
	}

	for _, tc := range tests {
		if got := tc.status.String(); got != tc.expected {
			t.Errorf("expected %q, got %q", tc.expected, got)
		}
	}
}

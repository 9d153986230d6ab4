package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/stlkit/pkg/stl"
)

func decodeForReport(t *testing.T, input string) (*stl.Model, []stl.Facet, []stl.Status) {
	t.Helper()

	model, err := stl.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var statuses []stl.Status
	facets := stl.Collect(model.Facets, func(s stl.Status) {
		statuses = append(statuses, s)
	})
	return model, facets, statuses
}

func TestWriteReport(t *testing.T) {
	// Second facet is collinear and ends up in the degenerate list.
	input := "solid box facet normal 0 0 0 outer loop " +
		"vertex 0 0 0 vertex 2 0 0 vertex 0 2 0 " +
		"endloop endfacet " +
		"facet normal 0 0 0 outer loop " +
		"vertex 0 0 0 vertex 1 0 0 vertex 2 0 0 " +
		"endloop endfacet endsolid"

	model, facets, statuses := decodeForReport(t, input)

	var buf bytes.Buffer
	if err := writeReport(&buf, "box.stl", stl.FormatText, model, facets, statuses); err != nil {
		t.Fatalf("writeReport failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# STL Report: box",
		"## Geometry",
		"## Degenerate Facets",
		"box.stl",
		"Declared facets",
		"skipped degenerate facet 2.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in report:\n%s", want, out)
		}
	}
}

func TestWriteReport_NoDegenerates(t *testing.T) {
	input := "solid clean facet normal 0 0 0 outer loop " +
		"vertex 0 0 0 vertex 1 0 0 vertex 0 1 0 " +
		"endloop endfacet endsolid"

	model, facets, statuses := decodeForReport(t, input)

	var buf bytes.Buffer
	if err := writeReport(&buf, "clean.stl", stl.FormatText, model, facets, statuses); err != nil {
		t.Fatalf("writeReport failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "None.") {
		t.Errorf("expected empty degenerate list, got:\n%s", out)
	}
	if strings.Contains(out, "skipped degenerate") {
		t.Errorf("unexpected degenerate entry:\n%s", out)
	}
}

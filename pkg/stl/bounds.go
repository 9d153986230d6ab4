package stl

import "github.com/Faultbox/stlkit/pkg/geom"

// Bounds is the axis-aligned box enclosing a set of facets.
type Bounds struct {
	Min, Max geom.Vec3
}

// BoundsOf folds the bounding box over every vertex of facets.
// ok is false when facets is empty.
func BoundsOf(facets []Facet) (b Bounds, ok bool) {
	if len(facets) == 0 {
		return Bounds{}, false
	}
	b = Bounds{Min: facets[0].A, Max: facets[0].A}
	for i := range facets {
		b.extend(facets[i].A)
		b.extend(facets[i].B)
		b.extend(facets[i].C)
	}
	return b, true
}

func (b *Bounds) extend(p geom.Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() geom.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents per axis.
func (b Bounds) Size() geom.Vec3 {
	return b.Max.Sub(b.Min)
}

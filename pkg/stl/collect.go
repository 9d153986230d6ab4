package stl

// Collect drains the stream and returns every facet that decoded cleanly,
// in order. Degenerate facets are dropped entirely — both the marker item
// and its best-effort payload. When report is non-nil it is called with
// the status of every item the stream emits, so a verbose caller sees a
// degenerate status twice, exactly as emitted.
func Collect(s FacetStream, report func(Status)) []Facet {
	var facets []Facet
	for {
		item, ok := s.Next()
		if !ok {
			return facets
		}
		if report != nil {
			report(item.Status)
		}
		if item.Status.Code == StatusOK && item.Facet != nil {
			facets = append(facets, *item.Facet)
		}
	}
}

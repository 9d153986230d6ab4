package stl

import "bytes"

// Format identifies an STL encoding.
type Format int

// Detected formats.
const (
	FormatUnknown Format = iota
	FormatBinary
	FormatText
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// Detector classifies raw STL input so the detection strategy can be
// swapped without touching the decoders.
type Detector interface {
	Detect(data []byte) Format
}

// StructureDetector is the default strategy: Text when the buffer leads
// with the solid keyword and mentions facet somewhere after it, Binary
// when the buffer can at least hold the fixed 84-byte header. Binary
// files whose name field begins with "solid" still classify as binary
// because their packed records carry no facet keyword.
type StructureDetector struct{}

// Detect implements Detector.
func (StructureDetector) Detect(data []byte) Format {
	s := bytes.TrimLeft(data, " \t\r\n")
	if hasKeyword(s, "solid") && bytes.Contains(s, []byte("facet")) {
		return FormatText
	}
	if len(data) >= binaryHeaderSize {
		return FormatBinary
	}
	return FormatUnknown
}

// hasKeyword reports whether b starts with word followed by whitespace or
// end of input.
func hasKeyword(b []byte, word string) bool {
	if !bytes.HasPrefix(b, []byte(word)) {
		return false
	}
	if len(b) == len(word) {
		return true
	}
	switch b[len(word)] {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// vertexScanOffset is where the historical heuristic starts looking: past
// the 80-byte binary name field plus slack.
const vertexScanOffset = 120

// VertexScanDetector is the historical heuristic: Text when the literal
// vertex occurs at or past byte offset 120, Binary otherwise. It misreads
// short ASCII files whose vertex lines all start before that offset, and
// binary files whose packed floats happen to spell the word; kept for
// compatibility with data sorted by the old rule.
type VertexScanDetector struct{}

// Detect implements Detector.
func (VertexScanDetector) Detect(data []byte) Format {
	if len(data) > vertexScanOffset && bytes.Contains(data[vertexScanOffset:], []byte("vertex")) {
		return FormatText
	}
	return FormatBinary
}

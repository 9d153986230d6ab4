package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/Faultbox/stlkit/pkg/stl"
)

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	detector, tolerance := decodeFlags(fs)
	out := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: stltool report [-o out.md] <file.stl>")
		os.Exit(1)
	}

	cfg := loadConfig()
	dec := newDecoder(cfg, *detector, *tolerance)

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	format := dec.Detector.Detect(data)
	model, err := dec.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var statuses []stl.Status
	facets := stl.Collect(model.Facets, func(s stl.Status) {
		statuses = append(statuses, s)
	})

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := writeReport(w, filepath.Base(path), format, model, facets, statuses); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeReport renders a Markdown summary of the decoded mesh: a header
// table, the geometry table, and the list of skipped degenerate facets.
func writeReport(w io.Writer, file string, format stl.Format, model *stl.Model, facets []stl.Facet, statuses []stl.Status) error {
	md := markdown.NewMarkdown(w)

	md.H1("STL Report: " + model.Name)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"File", "`" + file + "`"},
			{"Format", format.String()},
			{"Declared facets", strconv.Itoa(model.FacetCount)},
			{"Decoded facets", strconv.Itoa(len(facets))},
		},
	})
	md.PlainText("")

	md.H2("Geometry")
	md.PlainText("")
	if b, ok := stl.BoundsOf(facets); ok {
		size := b.Size()
		center := b.Center()
		md.Table(markdown.TableSet{
			Header: []string{"Metric", "X", "Y", "Z"},
			Rows: [][]string{
				{"Min", fg(b.Min.X), fg(b.Min.Y), fg(b.Min.Z)},
				{"Max", fg(b.Max.X), fg(b.Max.Y), fg(b.Max.Z)},
				{"Size", fg(size.X), fg(size.Y), fg(size.Z)},
				{"Center", fg(center.X), fg(center.Y), fg(center.Z)},
			},
		})
	} else {
		md.PlainText("No decodable facets.")
	}
	md.PlainText("")

	md.H2("Degenerate Facets")
	md.PlainText("")

	var skipped []string
	seen := make(map[int]bool)
	for _, s := range statuses {
		if s.Code == stl.StatusDegenerate && !seen[s.Index] {
			seen[s.Index] = true
			skipped = append(skipped, s.String())
		}
	}
	if len(skipped) == 0 {
		md.PlainText("None.")
	} else {
		md.BulletList(skipped...)
	}

	return md.Build()
}

// fg formats a float32 for a table cell.
func fg(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

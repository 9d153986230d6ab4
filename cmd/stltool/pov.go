package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/stlkit/pkg/geom"
	"github.com/Faultbox/stlkit/pkg/stl"
)

func cmdPov(args []string) {
	fs := flag.NewFlagSet("pov", flag.ExitOnError)
	detector, tolerance := decodeFlags(fs)
	out := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: stltool pov [-o out.pov] <file.stl>")
		os.Exit(1)
	}

	cfg := loadConfig()
	dec := newDecoder(cfg, *detector, *tolerance)

	model, err := dec.ParseFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	facets := stl.Collect(model.Facets, degenerateWarner())

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

	if err := writePOV(w, model.Name, facets); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writePOV emits the facets as a POV-Ray mesh2 object. Shared vertices are
// deduplicated into a single vertex_vectors entry. STL is z-up right-handed
// while POV-Ray is y-up left-handed, so coordinates are written x, z, y.
func writePOV(w io.Writer, name string, facets []stl.Facet) error {
	index := make(map[geom.Vec3]int)
	var verts []geom.Vec3

	idxOf := func(v geom.Vec3) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(verts)
		index[v] = i
		verts = append(verts, v)
		return i
	}

	faces := make([][3]int, 0, len(facets))
	for _, f := range facets {
		faces = append(faces, [3]int{idxOf(f.A), idxOf(f.B), idxOf(f.C)})
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// %s: %d vertices, %d triangles\n", name, len(verts), len(faces))
	fmt.Fprintf(bw, "mesh2 {\n")

	fmt.Fprintf(bw, "  vertex_vectors {\n")
	fmt.Fprintf(bw, "    %d,\n", len(verts))
	for i, v := range verts {
		sep := ","
		if i == len(verts)-1 {
			sep = ""
		}
		fmt.Fprintf(bw, "    <%g, %g, %g>%s\n", v.X, v.Z, v.Y, sep)
	}
	fmt.Fprintf(bw, "  }\n")

	fmt.Fprintf(bw, "  face_indices {\n")
	fmt.Fprintf(bw, "    %d,\n", len(faces))
	for i, f := range faces {
		sep := ","
		if i == len(faces)-1 {
			sep = ""
		}
		fmt.Fprintf(bw, "    <%d, %d, %d>%s\n", f[0], f[1], f[2], sep)
	}
	fmt.Fprintf(bw, "  }\n")

	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

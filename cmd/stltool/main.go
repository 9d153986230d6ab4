// stltool is a CLI utility for inspecting and converting STL mesh files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/stlkit/internal/config"
	"github.com/Faultbox/stlkit/pkg/geom"
	"github.com/Faultbox/stlkit/pkg/stl"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "dump":
		cmdDump(args)
	case "pov":
		cmdPov(args)
	case "report":
		cmdReport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`stltool - STL mesh file utility

Usage:
  stltool <command> [options] <file.stl>

Commands:
  info <file.stl>               Show mesh information and bounding box
  dump [-v] <file.stl>          List every facet (-v adds status lines)
  pov [-o out.pov] <file.stl>   Convert to a POV-Ray mesh2 object
  report [-o out.md] <file.stl> Write a Markdown mesh report

Options shared by all commands:
  -detector structure|scan      Format detection strategy
  -tolerance <float>            Zero-length normal threshold

Examples:
  stltool info part.stl
  stltool dump -v part.stl
  stltool pov -o part.pov part.stl
  stltool report part.stl > part.md`)
}

// decodeFlags registers the decoding flags shared by every subcommand.
// Empty/negative values mean "use the config default".
func decodeFlags(fs *flag.FlagSet) (detector *string, tolerance *float64) {
	detector = fs.String("detector", "", "Format detector: structure or scan")
	tolerance = fs.Float64("tolerance", -1, "Zero-length normal threshold")
	return detector, tolerance
}

// loadConfig loads the tool configuration or exits.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newDecoder builds a decoder from config defaults plus flag overrides.
func newDecoder(cfg *config.Config, detName string, tol float64) stl.Decoder {
	if detName == "" {
		detName = cfg.Decode.Detector
	}
	tolerance := cfg.Decode.Tolerance
	if tol >= 0 {
		tolerance = float32(tol)
	}
	return stl.Decoder{Detector: detectorByName(detName), Tolerance: tolerance}
}

func detectorByName(name string) stl.Detector {
	switch name {
	case "scan":
		return stl.VertexScanDetector{}
	case "", "structure":
		return stl.StructureDetector{}
	default:
		fmt.Fprintf(os.Stderr, "Unknown detector: %s (want structure or scan)\n", name)
		os.Exit(1)
		return nil
	}
}

// degenerateWarner returns a status callback that warns on stderr once per
// degenerate facet. A degenerate facet reports its status twice (marker and
// best-effort payload), so warnings are deduplicated by index.
func degenerateWarner() func(stl.Status) {
	seen := make(map[int]bool)
	return func(s stl.Status) {
		if s.Code == stl.StatusDegenerate && !seen[s.Index] {
			seen[s.Index] = true
			fmt.Fprintln(os.Stderr, s)
		}
	}
}

func vec(v geom.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	detector, tolerance := decodeFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: stltool info <file.stl>")
		os.Exit(1)
	}

	cfg := loadConfig()
	dec := newDecoder(cfg, *detector, *tolerance)

	data, err := os.ReadFile(fs.Arg(0))
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

	skipped := make(map[int]bool)
	facets := stl.Collect(model.Facets, func(s stl.Status) {
		if s.Code == stl.StatusDegenerate {
			skipped[s.Index] = true
		}
	})

	fmt.Printf("File:     %s\n", fs.Arg(0))
	fmt.Printf("Name:     %s\n", model.Name)
	fmt.Printf("Format:   %s\n", format)
	fmt.Printf("Declared: %d facets\n", model.FacetCount)
	fmt.Printf("Decoded:  %d\n", len(facets))
	fmt.Printf("Skipped:  %d degenerate\n", len(skipped))

	if b, ok := stl.BoundsOf(facets); ok {
		size := b.Size()
		fmt.Println()
		fmt.Printf("Bounds:   min %s  max %s\n", vec(b.Min), vec(b.Max))
		fmt.Printf("Size:     %g x %g x %g\n", size.X, size.Y, size.Z)
		fmt.Printf("Center:   %s\n", vec(b.Center()))
	}
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	detector, tolerance := decodeFlags(fs)
	verbose := fs.Bool("v", false, "Print per-facet status lines")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: stltool dump [-v] <file.stl>")
		os.Exit(1)
	}

	cfg := loadConfig()
	dec := newDecoder(cfg, *detector, *tolerance)
	show := *verbose || cfg.Decode.Verbose

	model, err := dec.ParseFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("solid %s (%d facets declared)\n", model.Name, model.FacetCount)

	for {
		item, ok := model.Facets.Next()
		if !ok {
			break
		}
		if show {
			fmt.Println(item.Status)
		}
		if item.Status.Code != stl.StatusOK || item.Facet == nil {
			continue
		}
		f := item.Facet
		fmt.Printf("facet %d: normal %s\n", item.Status.Index, vec(f.Normal))
		fmt.Printf("  a %s  b %s  c %s\n", vec(f.A), vec(f.B), vec(f.C))
	}
}

// Command intrdemo intersects two lines given on the command line, prints
// both query results and optionally renders them to a PNG.
//
// Usage:
//
//	intrdemo -line0 0,0,1,0 -line1 0,1,0,1 -output lines.png
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/intr"
	"github.com/gogpu/intr/internal/plot"
)

func main() {
	var (
		line0   = flag.String("line0", "0,0,1,0", "first line as ox,oy,dx,dy")
		line1   = flag.String("line1", "0,1,0,1", "second line as ox,oy,dx,dy")
		output  = flag.String("output", "", "write a PNG preview to this file")
		width   = flag.Int("width", 512, "preview width")
		height  = flag.Int("height", 512, "preview height")
		scale   = flag.Float64("scale", 32, "preview pixels per unit")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		intr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	l0, err := intr.ParseLine(*line0)
	if err != nil {
		log.Fatalf("line0: %v", err)
	}
	l1, err := intr.ParseLine(*line1)
	if err != nil {
		log.Fatalf("line1: %v", err)
	}
	for i, l := range []intr.Line[float64]{l0, l1} {
		if err := l.Validate(); err != nil {
			log.Printf("warning: line%d: %v", i, err)
		}
	}

	tr := intr.TestIntersection(l0, l1)
	fr := intr.FindIntersection(l0, l1)
	fmt.Printf("test: intersect=%v count=%d kind=%s\n", tr.Intersect, tr.NumIntersections, tr.Kind())
	fmt.Printf("find: %s\n", plot.Caption(fr))

	if *output == "" {
		return
	}
	if err := savePNG(*output, l0, l1,
		plot.WithSize(*width, *height), plot.WithScale(*scale)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d)\n", *output, *width, *height)
}

func savePNG(path string, l0, l1 intr.Line[float64], opts ...plot.Option) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := plot.WritePNG(w, l0, l1, opts...); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Package main renders Motion path functions as PNG curve previews.
// By default it renders every built-in path; with -timeline it renders
// each animation of a timeline file instead.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"github.com/go-drift/motion/pkg/anim"
	"github.com/go-drift/motion/pkg/timeline"
)

type entry struct {
	name     string
	path     anim.Path
	duration int32
}

var builtins = []entry{
	{"linear", anim.Linear(), 1000},
	{"ease-in", anim.EaseIn(), 1000},
	{"ease-out", anim.EaseOut(), 1000},
	{"ease-in-out", anim.EaseInOut(), 1000},
	{"overshoot", anim.Overshoot(), 1000},
	{"bounce", anim.Bounce(), 1000},
	{"step", anim.Step(), 1000},
}

func main() {
	out := flag.String("out", ".", "output directory")
	width := flag.Int("w", 512, "image width in pixels")
	height := flag.Int("h", 320, "image height in pixels")
	samples := flag.Int("samples", 256, "curve samples per image")
	timelinePath := flag.String("timeline", "", "render the animations of this timeline file instead of the built-in paths")
	flag.Parse()

	entries := builtins
	if *timelinePath != "" {
		f, err := timeline.Load(*timelinePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading timeline: %v\n", err)
			os.Exit(1)
		}
		entries = entries[:0]
		for _, s := range f.Animations {
			a, err := s.Build()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error building %q: %v\n", s.Name, err)
				os.Exit(1)
			}
			entries = append(entries, entry{s.Name, a.Path, a.Duration})
		}
	}

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for _, e := range entries {
		img := renderCurve(e.path, e.duration, *width, *height, *samples)
		name := filepath.Join(*out, e.name+".png")
		if err := writePNG(name, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", name)
	}
}

// renderCurve samples the path over its duration and strokes the
// polyline with an anti-aliased rasterizer. The value axis gets a 25%
// margin on both sides so overshoot and bounce stay inside the frame.
func renderCurve(p anim.Path, duration int32, width, height, samples int) *image.RGBA {
	const span = int32(1000)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff // white background
	}

	margin := float32(height) * 0.25
	plotH := float32(height) - 2*margin

	pt := func(i int) (float32, float32) {
		elapsed := int32(int64(duration) * int64(i) / int64(samples))
		v := p.Eval(elapsed, duration, 0, span)
		x := float32(width-1) * float32(i) / float32(samples)
		y := float32(height) - margin - plotH*float32(v)/float32(span)
		return x, y
	}

	r := vector.NewRasterizer(width, height)
	x0, y0 := pt(0)
	for i := 1; i <= samples; i++ {
		x1, y1 := pt(i)
		strokeSegment(r, x0, y0, x1, y1, 1.5)
		x0, y0 = x1, y1
	}
	r.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0x20, 0x60, 0xc0, 0xff}), image.Point{})

	return img
}

// strokeSegment adds a half-width w quad around the segment to the
// rasterizer, which is enough of a stroke for dense polylines.
func strokeSegment(r *vector.Rasterizer, x0, y0, x1, y1, w float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length == 0 {
		return
	}
	// Unit normal scaled to the half width.
	nx, ny := -dy/length*w, dx/length*w

	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

package diagdraw

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
)

// Options configures the rendered canvas.
type Options struct {
	Width      int     // canvas width in pixels
	Height     int     // canvas height in pixels
	Margin     int     // canvas margin in pixels
	ShowLabels bool    // draw îlot id labels
	ScaleHint  float64 // meters-per-pixel hint; 0 derives it from bounds
}

// DefaultOptions returns sensible defaults sized for a typical floor plan.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 800, Margin: 40, ShowLabels: true}
}

// Render draws fp's walls/restricted zones, c's îlots, and c's corridors
// into an SVG byte slice. Îlots are colored by size bucket; corridors are
// colored by ADA accessibility.
func Render(fp *floorplan.FloorPlan, c *ilot.Candidate, opts Options) []byte {
	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	bounds := fp.Bounds.Rect
	scale := opts.ScaleHint
	if scale <= 0 {
		usableW := float64(opts.Width - 2*opts.Margin)
		usableH := float64(opts.Height - 2*opts.Margin)
		scaleX := usableW / maxFloat(bounds.Width, 1)
		scaleY := usableH / maxFloat(bounds.Height, 1)
		scale = minFloat(scaleX, scaleY)
	}

	proj := func(p geom.Point) (int, int) {
		x := opts.Margin + int((p.X-bounds.X)*scale)
		// SVG's y axis grows downward; flip so "up" on screen matches +Y.
		y := opts.Height - opts.Margin - int((p.Y-bounds.Y)*scale)
		return x, y
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	bx, by := proj(geom.Point{X: bounds.MinX(), Y: bounds.MaxY()})
	canvas.Rect(bx, by, int(bounds.Width*scale), int(bounds.Height*scale), "fill:none;stroke:#333333;stroke-width:2")

	for _, w := range fp.Walls {
		drawRect(canvas, proj, scale, w.Footprint, "fill:#444444;stroke:none")
	}
	for _, z := range fp.RestrictedZones {
		drawRect(canvas, proj, scale, z.Bounds(), "fill:#ffcccc;stroke:#cc0000;stroke-width:1;fill-opacity:0.5")
	}

	if c != nil {
		for _, corr := range c.Corridors {
			points := make([][2]int, len(corr.Path.Points))
			for i, p := range corr.Path.Points {
				x, y := proj(p)
				points[i] = [2]int{x, y}
			}
			color := "stroke:#0066cc"
			if corr.MeetsADA() {
				color = "stroke:#009900"
			}
			drawPolyline(canvas, points, color)
		}
		for _, il := range c.Ilots {
			drawRect(canvas, proj, scale, il.Footprint(), bucketStyle(il.Bucket))
			if opts.ShowLabels {
				x, y := proj(il.Center())
				canvas.Text(x, y, il.ID, "font-size:9px;text-anchor:middle;fill:#000000")
			}
		}
	}

	canvas.End()
	return buf.Bytes()
}

// SaveToFile renders fp/c and writes the SVG to path with 0644 permissions.
func SaveToFile(fp *floorplan.FloorPlan, c *ilot.Candidate, opts Options, path string) error {
	data := Render(fp, c, opts)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing diagnostic SVG to %q: %w", path, err)
	}
	return nil
}

func drawRect(canvas *svg.SVG, proj func(geom.Point) (int, int), scale float64, r geom.Rect, style string) {
	x, y := proj(geom.Point{X: r.MinX(), Y: r.MaxY()})
	canvas.Rect(x, y, int(r.Width*scale), int(r.Height*scale), style)
}

func drawPolyline(canvas *svg.SVG, points [][2]int, style string) {
	if len(points) < 2 {
		return
	}
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i], ys[i] = p[0], p[1]
	}
	canvas.Polyline(xs, ys, style+";fill:none;stroke-width:3")
}

func bucketStyle(b ilot.SizeBucket) string {
	switch b {
	case ilot.SizeSmall:
		return "fill:#cce5ff;stroke:#004080;stroke-width:1"
	case ilot.SizeMedium:
		return "fill:#d9f2d9;stroke:#1a661a;stroke-width:1"
	case ilot.SizeLarge:
		return "fill:#fff0cc;stroke:#806600;stroke-width:1"
	default:
		return "fill:#eeeeee;stroke:#666666;stroke-width:1"
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

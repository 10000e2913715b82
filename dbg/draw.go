// Package dbg renders triangulations and compiled drawings to PNG for
// visual inspection during development. Output quality is secondary;
// these helpers exist for eyeballing geometry, not for production
// rendering.
package dbg

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/image/colornames"

	"github.com/tessdraw/tessdraw"
	"github.com/tessdraw/tessdraw/geom"
)

const drawPadding = 10

// triangle fill palette, cycled per triangle so neighbors are easy to
// tell apart.
var palette = []string{
	"steelblue", "darkseagreen", "indianred", "goldenrod",
	"mediumpurple", "cadetblue", "rosybrown", "olivedrab",
}

// SaveTriangulation renders a polygon and its triangulation to a PNG
// file. Each triangle is filled with a cycling palette color and the
// polygon outline is drawn on top.
func SaveTriangulation(points []geom.Point, triangles []int, scale float64, file string) error {
	c := newContext(points, scale)

	for t := 0; t+2 < len(triangles); t += 3 {
		p0 := points[triangles[t]]
		p1 := points[triangles[t+1]]
		p2 := points[triangles[t+2]]
		c.MoveTo(float64(p0.X), float64(p0.Y))
		c.LineTo(float64(p1.X), float64(p1.Y))
		c.LineTo(float64(p2.X), float64(p2.Y))
		c.ClosePath()
		c.SetColor(colornames.Map[palette[(t/3)%len(palette)]])
		c.FillPreserve()
		c.SetColor(colornames.Gray)
		c.SetLineWidth(1)
		c.Stroke()
	}

	c.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		c.LineTo(float64(p.X), float64(p.Y))
	}
	c.ClosePath()
	c.SetColor(colornames.Cyan)
	c.SetLineWidth(2)
	c.Stroke()

	return c.SavePNG(file)
}

// SaveDrawing renders the triangle patches of a compiled drawing to a
// PNG file, filled triangles in their fill color and all patch edges
// outlined.
func SaveDrawing(d *tessdraw.Drawing, scale float64, file string) error {
	positions := d.Positions()
	fills := d.FillColors()
	flags := d.FillFlags()

	points := make([]geom.Point, 0, len(positions)/3)
	for i := 0; i+2 < len(positions); i += 3 {
		points = append(points, geom.Pt(positions[i], positions[i+1]))
	}
	if len(points) == 0 {
		return nil
	}
	c := newContext(points, scale)

	for t := 0; t < d.TriangleCount(); t++ {
		p0 := points[3*t]
		p1 := points[3*t+1]
		p2 := points[3*t+2]
		c.MoveTo(float64(p0.X), float64(p0.Y))
		c.LineTo(float64(p1.X), float64(p1.Y))
		c.LineTo(float64(p2.X), float64(p2.Y))
		c.ClosePath()
		if flags[3*t] != 0 {
			c.SetRGB(float64(fills[9*t]), float64(fills[9*t+1]), float64(fills[9*t+2]))
			c.FillPreserve()
		}
		c.SetColor(colornames.Cyan)
		c.SetLineWidth(1)
		c.Stroke()
	}
	return c.SavePNG(file)
}

// CatTriangulation renders a triangulation to a temporary PNG and cats
// it to stdout for terminals with inline image support.
func CatTriangulation(points []geom.Point, triangles []int, scale float64) error {
	file := "/tmp/tessdraw_triangulation.png"
	if err := SaveTriangulation(points, triangles, scale, file); err != nil {
		return err
	}
	imgcat.CatFile(file, os.Stdout)
	return nil
}

// newContext sets up a drawing context sized to the points' bounding
// box, flipped so the origin is at the bottom left to match the y-up
// geometry convention.
func newContext(points []geom.Point, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
	return c
}

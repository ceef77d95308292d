package dbg

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polycollide/shape"
)

// Padding around the shapes, in pixels
const drawPadding = 40

// Fill colors, cycled through by shape index
var shapeColors = [][3]float64{
	{0, 0.5, 0},
	{0, 0.3, 0.6},
	{0.6, 0.3, 0},
	{0.5, 0, 0.5},
}

// Render draws shapes onto a black canvas: each shape filled and stroked, with
// its vertices as dots and its outward normals as short strokes from the edge
// midpoints. scale is pixels per world unit. Y points up.
func Render(shapes []shape.Shape, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range shapes {
		for _, v := range s.Vertices() {
			minX = math.Min(minX, v.X)
			minY = math.Min(minY, v.Y)
			maxX = math.Max(maxX, v.X)
			maxY = math.Max(maxY, v.Y)
		}
	}
	if len(shapes) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for i, s := range shapes {
		drawShape(c, s, shapeColors[i%len(shapeColors)], scale)
	}
	return c
}

func drawShape(c *gg.Context, s shape.Shape, color [3]float64, scale float64) {
	vertices := s.Vertices()
	c.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		c.LineTo(v.X, v.Y)
	}
	c.ClosePath()
	c.SetRGBA(color[0], color[1], color[2], 0.6)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2 / scale)
	c.Stroke()

	// Normals are unit length, which can dwarf small shapes, so they are drawn
	// at a fixed screen size instead.
	c.SetRGB(1, 0.6, 0)
	c.SetLineWidth(1 / scale)
	for _, n := range s.Normals() {
		dx, dy := n.B.X-n.A.X, n.B.Y-n.A.Y
		c.DrawLine(n.A.X, n.A.Y, n.A.X+dx*12/scale, n.A.Y+dy*12/scale)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, v := range vertices {
		c.DrawCircle(v.X, v.Y, 3/scale)
		c.Fill()
	}
}

// SavePNG renders shapes to a PNG file.
func SavePNG(path string, shapes []shape.Shape, scale float64) error {
	return Render(shapes, scale).SavePNG(path)
}

// Preview renders shapes and prints them to the terminal (iTerm only).
func Preview(shapes []shape.Shape, scale float64) error {
	const path = "/tmp/polycollide.png"
	if err := SavePNG(path, shapes, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

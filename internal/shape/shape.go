// Package shape defines the vector shapes a drawing is made of. The set of
// variants is closed: Line, Rectangle and Circle, each built from the two
// points of a click gesture and immutable afterwards. Shapes carry their own
// stroke color, fixed at construction.
package shape

import (
	"image"
	"image/color"

	"github.com/jbeda/geom"

	"github.com/example/sketchpad/internal/render"
)

// StrokeWidth is the outline thickness every shape is drawn with.
const StrokeWidth = 2

// Shape is the uniform render capability over the closed variant set.
// Rendering draws the shape onto dst unconditionally; pixels outside dst are
// clipped by the raster layer, never reported as errors.
type Shape interface {
	Render(dst *image.RGBA)
}

// Line is a straight stroke between two points.
type Line struct {
	From  geom.Coord
	To    geom.Coord
	Color color.RGBA
}

// LineBetween builds a line from a completed gesture.
func LineBetween(from, to geom.Coord, col color.RGBA) Line {
	return Line{From: from, To: to, Color: col}
}

func (l Line) Render(dst *image.RGBA) {
	render.DrawLine(dst, int(l.From.X), int(l.From.Y), int(l.To.X), int(l.To.Y), l.Color, StrokeWidth)
}

// Rectangle is an axis-aligned outline. Size is the vector from Origin to
// the gesture's end point; negative components mean the box is flipped
// across that axis and are normalized when drawing, not rejected.
type Rectangle struct {
	Origin geom.Coord
	Size   geom.Coord
	Color  color.RGBA
}

// RectangleBetween builds a rectangle whose size is end minus start.
func RectangleBetween(start, end geom.Coord, col color.RGBA) Rectangle {
	return Rectangle{Origin: start, Size: end.Minus(start), Color: col}
}

// Bounds returns the canonical pixel rectangle, with flipped axes folded
// back into Min <= Max form.
func (r Rectangle) Bounds() image.Rectangle {
	return image.Rect(
		int(r.Origin.X), int(r.Origin.Y),
		int(r.Origin.X+r.Size.X), int(r.Origin.Y+r.Size.Y),
	).Canon()
}

func (r Rectangle) Render(dst *image.RGBA) {
	render.DrawRect(dst, r.Bounds(), r.Color, StrokeWidth)
}

// Circle is an outlined circle. Radius is never negative.
type Circle struct {
	Center geom.Coord
	Radius float64
	Color  color.RGBA
}

// CircleBetween builds a circle centred on the gesture's start point whose
// radius is the distance to the end point.
func CircleBetween(center, rim geom.Coord, col color.RGBA) Circle {
	return Circle{Center: center, Radius: center.DistanceFrom(rim), Color: col}
}

func (c Circle) Render(dst *image.RGBA) {
	render.DrawCircle(dst, int(c.Center.X), int(c.Center.Y), int(c.Radius), c.Color, StrokeWidth)
}

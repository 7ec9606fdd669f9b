package shape

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/jbeda/geom"
)

var white = color.RGBA{255, 255, 255, 255}

func TestRectangleSizeIsEndMinusStart(t *testing.T) {
	r := RectangleBetween(geom.Coord{X: 10, Y: 10}, geom.Coord{X: 50, Y: 30}, white)
	if r.Size.X != 40 || r.Size.Y != 20 {
		t.Fatalf("size = (%v,%v), want (40,20)", r.Size.X, r.Size.Y)
	}
}

func TestRectangleFlippedSizeIsNegative(t *testing.T) {
	r := RectangleBetween(geom.Coord{X: 50, Y: 30}, geom.Coord{X: 10, Y: 10}, white)
	if r.Size.X != -40 || r.Size.Y != -20 {
		t.Fatalf("size = (%v,%v), want (-40,-20)", r.Size.X, r.Size.Y)
	}
	// The flip is folded away when drawing, not treated as an error.
	want := image.Rect(10, 10, 50, 30)
	if got := r.Bounds(); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
}

func TestCircleRadiusIsEuclideanDistance(t *testing.T) {
	c := CircleBetween(geom.Coord{X: 0, Y: 0}, geom.Coord{X: 3, Y: 4}, white)
	if math.Abs(c.Radius-5) > 1e-9 {
		t.Fatalf("radius = %v, want 5", c.Radius)
	}
}

func TestLineRenderSetsEndpoints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	LineBetween(geom.Coord{X: 5, Y: 5}, geom.Coord{X: 30, Y: 20}, white).Render(img)
	if got := img.RGBAAt(5, 5); got != white {
		t.Fatalf("start pixel not drawn: %+v", got)
	}
	if got := img.RGBAAt(30, 20); got != white {
		t.Fatalf("end pixel not drawn: %+v", got)
	}
}

func TestFlippedRectangleRendersSameAsCanonical(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 60, 60))
	b := image.NewRGBA(image.Rect(0, 0, 60, 60))
	RectangleBetween(geom.Coord{X: 10, Y: 10}, geom.Coord{X: 50, Y: 30}, white).Render(a)
	RectangleBetween(geom.Coord{X: 50, Y: 30}, geom.Coord{X: 10, Y: 10}, white).Render(b)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("flipped rectangle rendered differently from canonical one")
		}
	}
}

func TestDegenerateShapesRenderWithoutPanic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	p := geom.Coord{X: 10, Y: 10}
	LineBetween(p, p, white).Render(img)
	RectangleBetween(p, p, white).Render(img)
	CircleBetween(p, p, white).Render(img)
	// A zero-length line still marks its single point.
	if got := img.RGBAAt(10, 10); got != white {
		t.Fatalf("degenerate shapes left no mark at %v: %+v", p, got)
	}
}

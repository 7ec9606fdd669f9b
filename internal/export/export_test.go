package export

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/jbeda/geom"

	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/shape"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func sampleDocument() *editor.Document {
	doc := editor.NewDocument()
	doc.Append(shape.LineBetween(geom.Coord{X: 10, Y: 10}, geom.Coord{X: 90, Y: 50}, white))
	doc.Append(shape.CircleBetween(geom.Coord{X: 50, Y: 50}, geom.Coord{X: 50, Y: 70}, white))
	return doc
}

func TestRenderDrawsShapesOverBackground(t *testing.T) {
	img := Render(sampleDocument(), 100, 100, black)
	if got := img.Bounds(); got.Dx() != 100 || got.Dy() != 100 {
		t.Fatalf("surface bounds = %v", got)
	}
	if got := img.RGBAAt(10, 10); got != white {
		t.Fatalf("line start not drawn: %+v", got)
	}
	if got := img.RGBAAt(50, 70); got != white {
		t.Fatalf("circle rim not drawn: %+v", got)
	}
	if got := img.RGBAAt(2, 95); got != black {
		t.Fatalf("background pixel = %+v, want black", got)
	}
}

func TestRenderZOrderIsCommitOrder(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	doc := editor.NewDocument()
	doc.Append(shape.LineBetween(geom.Coord{X: 0, Y: 10}, geom.Coord{X: 40, Y: 10}, white))
	doc.Append(shape.LineBetween(geom.Coord{X: 0, Y: 10}, geom.Coord{X: 40, Y: 10}, red))
	img := Render(doc, 50, 50, black)
	if got := img.RGBAAt(20, 10); got != red {
		t.Fatalf("later shape did not draw over earlier one: %+v", got)
	}
}

func TestWritePNGIsIdempotent(t *testing.T) {
	doc := sampleDocument()
	path := filepath.Join(t.TempDir(), "drawing.png")

	if err := WritePNG(path, doc, 100, 100, black); err != nil {
		t.Fatalf("first export: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read first export: %v", err)
	}

	if err := WritePNG(path, doc, 100, 100, black); err != nil {
		t.Fatalf("second export: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read second export: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("repeated export with unchanged document produced different bytes")
	}
}

func TestWritePNGUnwritablePathReturnsError(t *testing.T) {
	doc := sampleDocument()
	path := filepath.Join(t.TempDir(), "missing", "drawing.png")
	if err := WritePNG(path, doc, 100, 100, black); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestWritePDFEmitsDocument(t *testing.T) {
	doc := sampleDocument()
	doc.Append(shape.RectangleBetween(geom.Coord{X: 80, Y: 80}, geom.Coord{X: 20, Y: 30}, white))
	path := filepath.Join(t.TempDir(), "drawing.pdf")

	if err := WritePDF(path, doc, 100, 100); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", data[:min(len(data), 8)])
	}
}

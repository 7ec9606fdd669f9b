// Package export flattens a shape document into files. The PNG path renders
// the same pixels the window shows; the PDF path re-emits the shapes as
// vector primitives.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/example/sketchpad/internal/editor"
)

// Render draws every committed shape, in commit order, onto a fresh surface
// of the given size filled with the background color. The window's paint
// pass and the PNG exporter share this function, so an exported file always
// matches the visible canvas.
func Render(doc *editor.Document, width, height int, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)
	for _, rec := range doc.Shapes() {
		rec.Shape.Render(img)
	}
	return img
}

// WritePNG renders the document and writes it to path, overwriting any
// previous export. The encoding is deterministic: repeated calls with an
// unchanged document produce byte-identical files.
func WritePNG(path string, doc *editor.Document, width, height int, background color.Color) error {
	img := Render(doc, width, height, background)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

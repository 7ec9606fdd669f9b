package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/shape"
)

// WritePDF emits the document as a single-page vector PDF. The page is sized
// in points to match the canvas so coordinates carry over one to one.
func WritePDF(path string, doc *editor.Document, width, height int) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.AddPage()
	pdf.SetLineWidth(shape.StrokeWidth)

	for _, rec := range doc.Shapes() {
		switch s := rec.Shape.(type) {
		case shape.Line:
			pdf.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
			pdf.Line(s.From.X, s.From.Y, s.To.X, s.To.Y)
		case shape.Rectangle:
			pdf.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
			b := s.Bounds()
			pdf.Rect(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()), "D")
		case shape.Circle:
			pdf.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
			pdf.Circle(s.Center.X, s.Center.Y, s.Radius, "D")
		default:
			return fmt.Errorf("export %s: unknown shape %T", path, rec.Shape)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

package editor

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jbeda/geom"

	"github.com/example/sketchpad/internal/shape"
)

var testColor = color.RGBA{255, 255, 255, 255}

func line(x0, y0, x1, y1 float64) shape.Shape {
	return shape.LineBetween(geom.Coord{X: x0, Y: y0}, geom.Coord{X: x1, Y: y1}, testColor)
}

func TestAppendKeepsCommitOrder(t *testing.T) {
	d := NewDocument()
	want := []shape.Shape{
		line(0, 0, 1, 1),
		shape.CircleBetween(geom.Coord{X: 5, Y: 5}, geom.Coord{X: 8, Y: 9}, testColor),
		shape.RectangleBetween(geom.Coord{X: 1, Y: 2}, geom.Coord{X: 3, Y: 4}, testColor),
	}
	for _, s := range want {
		d.Append(s)
	}
	if d.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", d.Len(), len(want))
	}
	got := d.Shapes()
	for i := range want {
		if diff := cmp.Diff(want[i], got[i].Shape); diff != "" {
			t.Fatalf("shape %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestUndoIsInverseOfAppend(t *testing.T) {
	d := NewDocument()
	d.Append(line(0, 0, 10, 10))
	d.Append(line(5, 5, 20, 20))
	before := d.Shapes()

	d.Append(shape.CircleBetween(geom.Coord{}, geom.Coord{X: 3, Y: 4}, testColor))
	if _, ok := d.Undo(); !ok {
		t.Fatal("Undo reported nothing to undo")
	}

	if diff := cmp.Diff(before, d.Shapes()); diff != "" {
		t.Fatalf("collection differs from pre-append state (-want +got):\n%s", diff)
	}
}

func TestUndoOnEmptyDocumentIsNoOp(t *testing.T) {
	d := NewDocument()
	if _, ok := d.Undo(); ok {
		t.Fatal("Undo on empty document reported success")
	}
	if d.Len() != 0 || d.UndoneLen() != 0 {
		t.Fatalf("empty document changed: len=%d undone=%d", d.Len(), d.UndoneLen())
	}
}

func TestRedoRestoresUndoneShape(t *testing.T) {
	d := NewDocument()
	rec := d.Append(line(0, 0, 4, 4))
	d.Undo()

	restored, ok := d.Redo()
	if !ok {
		t.Fatal("Redo reported nothing to redo")
	}
	if restored.ID != rec.ID {
		t.Fatalf("redo changed identity: got %s, want %s", restored.ID, rec.ID)
	}
	if d.Len() != 1 || d.UndoneLen() != 0 {
		t.Fatalf("unexpected state after redo: len=%d undone=%d", d.Len(), d.UndoneLen())
	}
}

func TestAppendInvalidatesRedo(t *testing.T) {
	d := NewDocument()
	d.Append(line(0, 0, 1, 1))
	d.Undo()
	d.Append(line(2, 2, 3, 3))
	if _, ok := d.Redo(); ok {
		t.Fatal("Redo succeeded after a fresh commit")
	}
}

func TestClearEmptiesCollectionAndRedoBuffer(t *testing.T) {
	d := NewDocument()
	d.Append(line(0, 0, 1, 1))
	d.Append(line(1, 1, 2, 2))
	d.Undo()

	d.Clear()
	if d.Len() != 0 || d.UndoneLen() != 0 {
		t.Fatalf("Clear left state behind: len=%d undone=%d", d.Len(), d.UndoneLen())
	}
	if _, ok := d.Redo(); ok {
		t.Fatal("Redo succeeded after Clear")
	}
}

func TestRecordIDsAreUnique(t *testing.T) {
	d := NewDocument()
	a := d.Append(line(0, 0, 1, 1))
	b := d.Append(line(1, 1, 2, 2))
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}
}

// Package editor holds the interaction core of the application: the ordered
// shape document with undo/redo, and the two-click gesture state machine
// that turns pointer positions into committed shapes.
package editor

import (
	"github.com/google/uuid"

	"github.com/example/sketchpad/internal/shape"
)

// Record is one committed shape together with the identity it was assigned
// at commit time. The ID survives undo/redo round trips.
type Record struct {
	ID    string
	Shape shape.Shape
}

// Document is the ordered collection of committed shapes. Insertion order is
// z-order: later shapes draw over earlier ones. Undone shapes move to a redo
// buffer, most recently removed last.
type Document struct {
	shapes []Record
	undone []Record
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Append commits a shape to the tail of the document and returns its record.
// A fresh commit invalidates anything waiting on the redo buffer.
func (d *Document) Append(s shape.Shape) Record {
	rec := Record{ID: uuid.NewString(), Shape: s}
	d.shapes = append(d.shapes, rec)
	d.undone = d.undone[:0]
	return rec
}

// Undo moves the tail shape to the redo buffer. It reports whether anything
// was undone; an empty document is a no-op, not an error.
func (d *Document) Undo() (Record, bool) {
	if len(d.shapes) == 0 {
		return Record{}, false
	}
	rec := d.shapes[len(d.shapes)-1]
	d.shapes = d.shapes[:len(d.shapes)-1]
	d.undone = append(d.undone, rec)
	return rec, true
}

// Redo moves the most recently undone shape back onto the document tail,
// with the same identity it had before.
func (d *Document) Redo() (Record, bool) {
	if len(d.undone) == 0 {
		return Record{}, false
	}
	rec := d.undone[len(d.undone)-1]
	d.undone = d.undone[:len(d.undone)-1]
	d.shapes = append(d.shapes, rec)
	return rec, true
}

// Clear empties the document and the redo buffer unconditionally.
func (d *Document) Clear() {
	d.shapes = nil
	d.undone = nil
}

// Len returns the number of committed shapes.
func (d *Document) Len() int { return len(d.shapes) }

// UndoneLen returns the number of shapes waiting on the redo buffer.
func (d *Document) UndoneLen() int { return len(d.undone) }

// Shapes returns the committed records in commit order. The slice is a copy;
// the records it holds are shared immutable values.
func (d *Document) Shapes() []Record {
	out := make([]Record, len(d.shapes))
	copy(out, d.shapes)
	return out
}

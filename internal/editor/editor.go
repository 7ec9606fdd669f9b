package editor

import (
	"image/color"

	"github.com/jbeda/geom"

	"github.com/example/sketchpad/internal/shape"
)

// Tool selects which shape variant the next completed gesture commits.
type Tool int

const (
	ToolNone Tool = iota
	ToolLine
	ToolRectangle
	ToolCircle
)

func (t Tool) String() string {
	switch t {
	case ToolLine:
		return "line"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	default:
		return "none"
	}
}

// Editor owns the interaction state: the selected tool, the in-progress
// gesture and the current stroke color. It is a single explicit struct so
// the UI loop can own one instance and pass it where needed; there is no
// package-level drawing state.
//
// The gesture machine has two states. Idle covers both "no tool chosen" and
// "tool chosen, waiting for the first click"; once a first click lands the
// machine is awaiting the second click and pending holds the start point.
// pending is non-nil if and only if a second click is awaited.
type Editor struct {
	doc     *Document
	tool    Tool
	pending *geom.Coord
	color   color.RGBA
}

// New returns an editor committing into doc.
func New(doc *Document, col color.RGBA) *Editor {
	return &Editor{doc: doc, color: col}
}

// Document returns the document the editor commits into.
func (e *Editor) Document() *Document { return e.doc }

// Tool returns the current tool selection.
func (e *Editor) Tool() Tool { return e.tool }

// Color returns the current stroke color.
func (e *Editor) Color() color.RGBA { return e.color }

// SetColor changes the color used for future commits. Shapes already
// committed keep the color they were created with.
func (e *Editor) SetColor(col color.RGBA) { e.color = col }

// Pending reports the recorded first click of an in-progress gesture.
func (e *Editor) Pending() (geom.Coord, bool) {
	if e.pending == nil {
		return geom.Coord{}, false
	}
	return *e.pending, true
}

// SelectTool picks the shape variant for the next gesture. Re-selecting a
// tool is also the way out of a half-finished gesture: any pending first
// click is abandoned.
func (e *Editor) SelectTool(t Tool) {
	e.tool = t
	e.pending = nil
}

// CancelGesture abandons a pending first click, leaving the tool selected.
func (e *Editor) CancelGesture() {
	e.pending = nil
}

// Click feeds one canvas click into the gesture machine.
//
// With no tool selected it does nothing. The first click with a tool
// selected records the start point. The second click builds the shape for
// the selected tool from (start, end, current color), commits it, and resets
// both the tool and the gesture, so every shape needs an explicit tool
// choice. The committed record is returned when a commit happened.
func (e *Editor) Click(p geom.Coord) (Record, bool) {
	if e.pending == nil {
		if e.tool == ToolNone {
			return Record{}, false
		}
		start := p
		e.pending = &start
		return Record{}, false
	}

	start := *e.pending
	var s shape.Shape
	switch e.tool {
	case ToolLine:
		s = shape.LineBetween(start, p, e.color)
	case ToolRectangle:
		s = shape.RectangleBetween(start, p, e.color)
	case ToolCircle:
		s = shape.CircleBetween(start, p, e.color)
	default:
		// A pending point without a tool cannot happen: SelectTool clears
		// the pending point and Click never records one without a tool.
		e.pending = nil
		return Record{}, false
	}

	rec := e.doc.Append(s)
	e.tool = ToolNone
	e.pending = nil
	return rec, true
}

// Undo removes the most recent commit. Pending gestures are unaffected.
func (e *Editor) Undo() (Record, bool) { return e.doc.Undo() }

// Redo restores the most recently undone commit.
func (e *Editor) Redo() (Record, bool) { return e.doc.Redo() }

// Clear wipes the document and resets the interaction state to its starting
// point: no tool, no pending gesture.
func (e *Editor) Clear() {
	e.doc.Clear()
	e.tool = ToolNone
	e.pending = nil
}

// Package appstate runs the drawing window: a button bar and color palette on
// top, the canvas below, and a status line at the bottom. Events are handled
// one at a time on the window loop; every paint renders the committed shapes
// from scratch so the window always shows exactly what an export would write.
package appstate

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/jbeda/geom"
	"golang.design/x/clipboard"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/export"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/theme"
)

// AppState holds everything the window loop needs: the editor, the output
// paths, the theme and the transient UI state (hover, status message).
type AppState struct {
	Editor   *editor.Editor
	Output   string
	FontPath string
	Theme    *theme.Theme
	Notifier *notify.Notifier
	CanvasW  int
	CanvasH  int
	ColorIdx int

	onClose   func()
	closeOnce sync.Once

	buttons      []*CacheButton
	swatches     []image.Rectangle
	hoverButton  int
	hoverSwatch  int
	message      string
	messageUntil time.Time
	statusFace   font.Face

	keyboardAction map[KeyShortcut]string
	actions        map[string]func()

	clipboardOnce sync.Once
	clipboardErr  error
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithEditor sets the editor driving the canvas.
func WithEditor(e *editor.Editor) Option { return func(a *AppState) { a.Editor = e } }

// WithOutput sets the PNG path used when saving. The PDF export uses the same
// path with a .pdf extension.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithFontPath sets the font file used for the status bar.
func WithFontPath(path string) Option { return func(a *AppState) { a.FontPath = path } }

// WithTheme sets the chrome colors.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithNotifier sets the desktop notifier used after save, export and copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithCanvasSize sets the drawing surface dimensions.
func WithCanvasSize(w, h int) Option {
	return func(a *AppState) {
		if w > 0 {
			a.CanvasW = w
		}
		if h > 0 {
			a.CanvasH = h
		}
	}
}

// WithColorIndex sets the initial palette selection.
func WithColorIndex(idx int) Option { return func(a *AppState) { a.ColorIdx = idx } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Output:      "drawing.png",
		Theme:       theme.Default(),
		CanvasW:     800,
		CanvasH:     600,
		ColorIdx:    defaultColorIndex,
		hoverButton: -1,
		hoverSwatch: -1,
	}
	for _, o := range opts {
		o(a)
	}
	a.ColorIdx = clampColorIndex(a.ColorIdx)
	if a.Editor == nil {
		a.Editor = editor.New(editor.NewDocument(), paletteColorAt(a.ColorIdx))
	} else {
		a.Editor.SetColor(paletteColorAt(a.ColorIdx))
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) setStatus(msg string) {
	a.message = msg
	a.messageUntil = time.Now().Add(2 * time.Second)
	log.Print(msg)
}

func (a *AppState) pdfOutput() string {
	return strings.TrimSuffix(a.Output, filepath.Ext(a.Output)) + ".pdf"
}

func (a *AppState) save() {
	if err := export.WritePNG(a.Output, a.Editor.Document(), a.CanvasW, a.CanvasH, a.Theme.CanvasBackground); err != nil {
		log.Printf("save: %v", err)
		a.setStatus("save failed")
		return
	}
	a.setStatus(fmt.Sprintf("saved %s", a.Output))
	a.Notifier.Save(a.Output)
}

func (a *AppState) exportPDF() {
	out := a.pdfOutput()
	if err := export.WritePDF(out, a.Editor.Document(), a.CanvasW, a.CanvasH); err != nil {
		log.Printf("export: %v", err)
		a.setStatus("export failed")
		return
	}
	a.setStatus(fmt.Sprintf("exported %s", out))
	a.Notifier.Export(out)
}

func (a *AppState) copyCanvas() {
	a.clipboardOnce.Do(func() { a.clipboardErr = clipboard.Init() })
	if a.clipboardErr != nil {
		log.Printf("copy: %v", a.clipboardErr)
		a.setStatus("copy failed")
		return
	}
	img := export.Render(a.Editor.Document(), a.CanvasW, a.CanvasH, a.Theme.CanvasBackground)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("copy: %v", err)
		a.setStatus("copy failed")
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	a.setStatus("canvas copied to clipboard")
	a.Notifier.Copy("drawing")
}

func (a *AppState) register(name string, keys KeyboardShortcuts, fn func()) {
	a.actions[name] = fn
	if keys != nil {
		for _, sc := range keys.KeyboardShortcuts() {
			a.keyboardAction[sc] = name
		}
	}
}

// Main runs the window loop. It returns when the window is closed or the
// quit action fires.
func (a *AppState) Main(s screen.Screen) {
	a.statusFace = loadFace(a.FontPath)

	ed := a.Editor
	quit := false

	a.keyboardAction = map[KeyShortcut]string{}
	a.actions = map[string]func(){}

	a.register("line", shortcutList{{Rune: 'l'}}, func() { ed.SelectTool(editor.ToolLine) })
	a.register("rect", shortcutList{{Rune: 'r'}}, func() { ed.SelectTool(editor.ToolRectangle) })
	a.register("circle", shortcutList{{Rune: 'o'}}, func() { ed.SelectTool(editor.ToolCircle) })
	a.register("clear", shortcutList{{Rune: 'c'}}, func() {
		ed.Clear()
		a.setStatus("canvas cleared")
	})
	a.register("undo", shortcutList{{Rune: 'z'}}, func() {
		if rec, ok := ed.Undo(); ok {
			a.setStatus(fmt.Sprintf("undid %s", shapeName(rec.Shape)))
		} else {
			a.setStatus("nothing to undo")
		}
	})
	a.register("redo", shortcutList{{Rune: 'y'}}, func() {
		if rec, ok := ed.Redo(); ok {
			a.setStatus(fmt.Sprintf("redid %s", shapeName(rec.Shape)))
		} else {
			a.setStatus("nothing to redo")
		}
	})
	a.register("save", shortcutList{{Rune: 's'}}, func() { a.save() })
	a.register("export", shortcutList{{Rune: 'e'}}, func() { a.exportPDF() })
	a.register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, func() { a.copyCanvas() })
	a.register("cancel", shortcutList{{Code: key.CodeEscape}}, func() { ed.CancelGesture() })
	a.register("quit", shortcutList{{Rune: 'q'}}, func() { quit = true })

	style := a.Theme
	a.buttons = []*CacheButton{
		{Button: &ToolButton{label: "L:Line", tool: editor.ToolLine, style: style}},
		{Button: &ToolButton{label: "R:Rect", tool: editor.ToolRectangle, style: style}},
		{Button: &ToolButton{label: "O:Circle", tool: editor.ToolCircle, style: style}},
		{Button: &ActionButton{label: "C:Clear", style: style, onActivate: a.actions["clear"]}},
		{Button: &ActionButton{label: "Z:Undo", style: style, onActivate: a.actions["undo"]}},
		{Button: &ActionButton{label: "Y:Redo", style: style, onActivate: a.actions["redo"]}},
		{Button: &ActionButton{label: "S:Save", style: style, onActivate: a.actions["save"]}},
		{Button: &ActionButton{label: "E:PDF", style: style, onActivate: a.actions["export"]}},
	}
	for _, cb := range a.buttons {
		tb, ok := cb.Button.(*ToolButton)
		if !ok {
			continue
		}
		t := tb
		tb.onSelect = func() { ed.SelectTool(t.tool) }
	}

	// Lay the buttons out left to right after the program title, sized to
	// their labels so nothing is clipped.
	meas := &font.Drawer{Face: basicfont.Face7x13}
	x := meas.MeasureString("SketchPad").Ceil() + 16
	for _, cb := range a.buttons {
		var label string
		switch b := cb.Button.(type) {
		case *ToolButton:
			label = b.label
		case *ActionButton:
			label = b.label
		}
		bw := meas.MeasureString(label).Ceil() + 12
		cb.SetRect(image.Rect(x, 3, x+bw, buttonBarHeight-3))
		x = cb.Rect().Max.X + 6
	}

	winW := a.CanvasW
	if x+4 > winW {
		winW = x + 4
	}
	if pw := 4 + len(palette)*swatchStep; pw > winW {
		winW = pw
	}
	winH := topHeight + a.CanvasH + bottomHeight

	a.swatches = paletteRects(winW)

	w, err := s.NewWindow(&screen.NewWindowOptions{Width: winW, Height: winH, Title: "SketchPad"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			w.Send(paint.Event{})
		case paint.Event:
			a.drawFrame(s, w, winW, winH)
		case mouse.Event:
			if a.handleMouse(w, e, winH) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			name, ok := a.keyboardAction[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers}]
			if !ok {
				name, ok = a.keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
			}
			if !ok {
				continue
			}
			a.actions[name]()
			if quit {
				return
			}
			a.repaintSoon(w)
			w.Send(paint.Event{})
		}
	}
}

// handleMouse dispatches one mouse event and reports whether a repaint is
// needed. The three horizontal strips (buttons, palette, canvas) are disjoint
// so at most one of them consumes the event.
func (a *AppState) handleMouse(w screen.Window, e mouse.Event, winH int) bool {
	p := image.Point{int(e.X), int(e.Y)}
	press := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress

	if p.Y < buttonBarHeight {
		hover := -1
		for i, cb := range a.buttons {
			if p.In(cb.Rect()) {
				hover = i
				if press {
					cb.Activate()
					a.repaintSoon(w)
					return true
				}
				break
			}
		}
		changed := hover != a.hoverButton
		a.hoverButton = hover
		return changed
	}
	a.hoverButton = -1

	if p.Y < topHeight {
		hover := -1
		for i, r := range a.swatches {
			if p.In(r) {
				hover = i
				if press {
					a.ColorIdx = i
					a.Editor.SetColor(paletteColorAt(i))
					a.hoverSwatch = hover
					return true
				}
				break
			}
		}
		changed := hover != a.hoverSwatch
		a.hoverSwatch = hover
		return changed
	}
	a.hoverSwatch = -1

	if press && p.Y < topHeight+a.CanvasH && p.X < a.CanvasW {
		click := geom.Coord{X: float64(p.X), Y: float64(p.Y - topHeight)}
		if rec, committed := a.Editor.Click(click); committed {
			a.setStatus(fmt.Sprintf("drew %s", shapeName(rec.Shape)))
			a.repaintSoon(w)
		}
		return true
	}

	return false
}

// repaintSoon schedules one extra repaint for after the status message
// expires so it does not linger until the next event.
func (a *AppState) repaintSoon(w screen.Window) {
	time.AfterFunc(2*time.Second+100*time.Millisecond, func() { w.Send(paint.Event{}) })
}

func (a *AppState) drawFrame(s screen.Screen, w screen.Window, winW, winH int) {
	b, err := s.NewBuffer(image.Point{winW, winH})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()

	draw.Draw(dst, dst.Bounds(), &image.Uniform{a.Theme.Background}, image.Point{}, draw.Src)

	// Button bar with the program title on the left.
	title := &font.Drawer{Dst: dst, Src: image.NewUniform(a.Theme.Foreground), Face: basicfont.Face7x13,
		Dot: fixed.P(4, 18)}
	title.DrawString("SketchPad")
	active := a.Editor.Tool()
	for i, cb := range a.buttons {
		state := StateDefault
		if tb, ok := cb.Button.(*ToolButton); ok && tb.tool == active {
			state = StatePressed
		} else if i == a.hoverButton {
			state = StateHover
		}
		cb.Draw(dst, state)
	}

	// Palette strip.
	for i, r := range a.swatches {
		draw.Draw(dst, r, &image.Uniform{paletteColorAt(i)}, image.Point{}, draw.Src)
		if i == a.ColorIdx {
			outlineRect(dst, r.Inset(-1), a.Theme.Foreground)
		} else if i == a.hoverSwatch {
			outlineRect(dst, r.Inset(-1), a.Theme.ButtonBorder)
		}
	}

	// Canvas: committed shapes plus the pending gesture marker.
	canvas := export.Render(a.Editor.Document(), a.CanvasW, a.CanvasH, a.Theme.CanvasBackground)
	if pending, ok := a.Editor.Pending(); ok {
		render.DrawMarker(canvas, int(pending.X), int(pending.Y), markerArm, a.Theme.GestureMarker)
	}
	draw.Draw(dst, image.Rect(0, topHeight, a.CanvasW, topHeight+a.CanvasH), canvas, image.Point{}, draw.Src)

	// Status bar.
	statusRect := image.Rect(0, winH-bottomHeight, winW, winH)
	draw.Draw(dst, statusRect, &image.Uniform{a.Theme.StatusBackground}, image.Point{}, draw.Src)
	status := a.statusText()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(a.Theme.StatusText), Face: a.statusFace,
		Dot: fixed.P(4, winH-bottomHeight+17)}
	d.DrawString(status)

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func (a *AppState) statusText() string {
	if a.message != "" && time.Now().Before(a.messageUntil) {
		return a.message
	}
	if _, ok := a.Editor.Pending(); ok {
		return fmt.Sprintf("%s: click the second point, Esc cancels", a.Editor.Tool())
	}
	if t := a.Editor.Tool(); t != editor.ToolNone {
		return fmt.Sprintf("%s: click the first point", t)
	}
	return "Select a shape, then click the canvas twice. C clears, S saves, Q quits."
}

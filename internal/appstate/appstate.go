package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/shape"
	"github.com/example/sketchpad/internal/theme"
)

const (
	buttonBarHeight  = 28
	paletteBarHeight = 24
	bottomHeight     = 24

	swatchSize = 16
	swatchStep = 18

	// topHeight is where the canvas starts.
	topHeight = buttonBarHeight + paletteBarHeight

	markerArm = 4

	statusFontSize = 13
)

const defaultColorIndex = 1 // white

type PaletteColor struct {
	Name  string
	Color color.RGBA
}

var (
	palette = []color.RGBA{
		{0, 0, 0, 255},       // black
		{255, 255, 255, 255}, // white
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 0, 255},
		{0, 255, 255, 255},
		{255, 0, 255, 255},
		{128, 0, 0, 255},
		{0, 128, 0, 255},
		{0, 0, 128, 255},
		{128, 128, 0, 255},
		{0, 128, 128, 255},
		{128, 0, 128, 255},
		{192, 192, 192, 255},
		{128, 128, 128, 255},
	}
	paletteNames = []string{
		"Black",
		"White",
		"Red",
		"Lime",
		"Blue",
		"Yellow",
		"Cyan",
		"Magenta",
		"Maroon",
		"Green",
		"Navy",
		"Olive",
		"Teal",
		"Purple",
		"Silver",
		"Gray",
	}
)

// DefaultColorIndex returns the palette index new editors start with.
func DefaultColorIndex() int { return defaultColorIndex }

// Palette returns a copy of the available stroke colors.
func Palette() []color.RGBA {
	out := make([]color.RGBA, len(palette))
	copy(out, palette)
	return out
}

// PaletteColors returns palette entries annotated with their display names.
func PaletteColors() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	for i := range palette {
		out[i] = PaletteColor{Name: paletteNames[i], Color: palette[i]}
	}
	return out
}

func paletteColorAt(idx int) color.RGBA {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}

func clampColorIndex(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx >= len(palette) {
		return len(palette) - 1
	}
	return idx
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
// It delegates all interface methods to the wrapped Button while
// caching the result of Draw for each state.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

func (cb *CacheButton) Activate() { cb.Button.Activate() }

func buttonFill(style *theme.Theme, state ButtonState) color.RGBA {
	switch state {
	case StateHover:
		return style.ButtonBackgroundHover
	case StatePressed:
		return style.ButtonBackgroundPress
	default:
		return style.ButtonBackground
	}
}

func drawButtonChrome(dst *image.RGBA, rect image.Rectangle, label string, style *theme.Theme, state ButtonState) {
	draw.Draw(dst, rect, &image.Uniform{buttonFill(style, state)}, image.Point{}, draw.Src)
	outlineRect(dst, rect, style.ButtonBorder)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(style.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(rect.Min.X+6, rect.Min.Y+18)}
	d.DrawString(label)
}

// outlineRect draws a one pixel border inside rect.
func outlineRect(dst *image.RGBA, rect image.Rectangle, col color.Color) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		dst.Set(x, rect.Min.Y, col)
		dst.Set(x, rect.Max.Y-1, col)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dst.Set(rect.Min.X, y, col)
		dst.Set(rect.Max.X-1, y, col)
	}
}

// ToolButton selects a drawing tool when activated. It stays pressed while
// its tool is the active one.
type ToolButton struct {
	label string
	tool  editor.Tool
	style *theme.Theme
	rect  image.Rectangle
	// onSelect is called when the button is activated.
	onSelect func()
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	drawButtonChrome(dst, tb.rect, tb.label, tb.style, state)
}

func (tb *ToolButton) Rect() image.Rectangle { return tb.rect }

func (tb *ToolButton) SetRect(r image.Rectangle) {
	if r != tb.rect {
		tb.rect = r
	}
}

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect()
	}
}

// ActionButton runs a named action when activated.
type ActionButton struct {
	label      string
	style      *theme.Theme
	rect       image.Rectangle
	onActivate func()
}

func (ab *ActionButton) Draw(dst *image.RGBA, state ButtonState) {
	drawButtonChrome(dst, ab.rect, ab.label, ab.style, state)
}

func (ab *ActionButton) Rect() image.Rectangle { return ab.rect }

func (ab *ActionButton) SetRect(r image.Rectangle) {
	if r != ab.rect {
		ab.rect = r
	}
}

func (ab *ActionButton) Activate() {
	if ab.onActivate != nil {
		ab.onActivate()
	}
}

// loadFace loads the status bar font from path. A missing or unparsable file
// falls back to the embedded Go Regular face so the UI always comes up.
func loadFace(path string) font.Face {
	fallback := func(err error) font.Face {
		if path != "" {
			log.Printf("font %s: %v; using embedded fallback", path, err)
		}
		f, perr := opentype.Parse(goregular.TTF)
		if perr != nil {
			log.Fatalf("parse embedded font: %v", perr)
		}
		face, perr := opentype.NewFace(f, &opentype.FaceOptions{Size: statusFontSize, DPI: 72, Hinting: font.HintingFull})
		if perr != nil {
			log.Fatalf("embedded font face: %v", perr)
		}
		return face
	}

	if path == "" {
		return fallback(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback(err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fallback(err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: statusFontSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return fallback(err)
	}
	return face
}

// shapeName names a committed shape for status messages.
func shapeName(s shape.Shape) string {
	switch s.(type) {
	case shape.Line:
		return "line"
	case shape.Rectangle:
		return "rectangle"
	case shape.Circle:
		return "circle"
	default:
		return fmt.Sprintf("%T", s)
	}
}

// paletteRects lays out the swatch hit boxes for a window of the given width.
func paletteRects(winW int) []image.Rectangle {
	out := make([]image.Rectangle, 0, len(palette))
	x := 4
	y := buttonBarHeight + (paletteBarHeight-swatchSize)/2
	for range palette {
		if x+swatchSize > winW {
			break
		}
		out = append(out, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchStep
	}
	return out
}

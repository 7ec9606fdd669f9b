package theme

import (
	"image/color"
)

// Theme defines the color palette for the application chrome. Shape colors
// come from the drawing palette, not the theme.
type Theme struct {
	Name string

	Background       color.RGBA // window chrome behind toolbar and status bar
	Foreground       color.RGBA // chrome text
	CanvasBackground color.RGBA // drawing surface, also the export background

	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	StatusBackground color.RGBA
	StatusText       color.RGBA

	GestureMarker color.RGBA // cross marking the pending first click
}

// Default returns the hardcoded fallback theme, matching the classic look:
// dark chrome, black canvas, grey buttons with white labels.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{30, 30, 30, 255},
		Foreground:            color.RGBA{255, 255, 255, 255},
		CanvasBackground:      color.RGBA{0, 0, 0, 255},
		ButtonBackground:      color.RGBA{100, 100, 100, 255},
		ButtonBackgroundHover: color.RGBA{120, 120, 120, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{255, 255, 255, 255},
		ButtonBorder:          color.RGBA{160, 160, 160, 255},
		StatusBackground:      color.RGBA{45, 45, 45, 255},
		StatusText:            color.RGBA{255, 255, 255, 255},
		GestureMarker:         color.RGBA{255, 255, 0, 255},
	}
}

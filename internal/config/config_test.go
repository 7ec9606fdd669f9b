package config

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
output = /tmp/sketch.png
font = /usr/share/fonts/arial.ttf

[canvas]
width = 1024
height = 768

[notify]
save = true
export = false
copy = true

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}

	if cfg.Output != "/tmp/sketch.png" {
		t.Errorf("Expected output '/tmp/sketch.png', got '%s'", cfg.Output)
	}

	if cfg.Font != "/usr/share/fonts/arial.ttf" {
		t.Errorf("Expected font '/usr/share/fonts/arial.ttf', got '%s'", cfg.Font)
	}

	if cfg.Canvas.Width != 1024 || cfg.Canvas.Height != 768 {
		t.Errorf("Unexpected canvas size: %+v", cfg.Canvas)
	}

	if !cfg.Notify.Save {
		t.Error("Expected notify.save to be true")
	}
	if cfg.Notify.Export {
		t.Error("Expected notify.export to be false")
	}
	if !cfg.Notify.Copy {
		t.Error("Expected notify.copy to be true")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}

	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Output != "drawing.png" {
		t.Errorf("Expected default output 'drawing.png', got '%s'", cfg.Output)
	}
	if cfg.Canvas != DefaultCanvas {
		t.Errorf("Expected default canvas %+v, got %+v", DefaultCanvas, cfg.Canvas)
	}
}

func TestParseRejectsBadCanvas(t *testing.T) {
	for _, input := range []string{
		"[canvas]\nwidth = zero\n",
		"[canvas]\nheight = -5\n",
	} {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
output = /home/user/drawings/out.png
font = comic.ttf

[canvas]
width = 640
height = 480

[notify]
save = true
export = true
copy = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.Output != cfg2.Output {
		t.Errorf("Output mismatch: %q vs %q", cfg.Output, cfg2.Output)
	}
	if cfg.Font != cfg2.Font {
		t.Errorf("Font mismatch: %q vs %q", cfg.Font, cfg2.Font)
	}
	if cfg.Canvas != cfg2.Canvas {
		t.Errorf("Canvas mismatch: %+v vs %+v", cfg.Canvas, cfg2.Canvas)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if t1.Background != t2.Background {
		t.Errorf("Theme background mismatch: %v vs %v", t1.Background, t2.Background)
	}
}

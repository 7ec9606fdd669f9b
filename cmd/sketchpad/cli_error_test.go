package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestUnknownCommandIsUsageError(t *testing.T) {
	t.Setenv("SKETCHPAD_CONFIG", filepath.Join(t.TempDir(), "missing.rc"))
	r := newRoot()
	err := r.Run([]string{"bogus"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestColorsRejectsPositionalArgs(t *testing.T) {
	r := &root{program: "sketchpad"}
	_, err := parseColorsCmd([]string{"extra"}, r)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestConfigRequiresSubcommand(t *testing.T) {
	r := &root{program: "sketchpad"}
	cmd, err := parseConfigCmd(nil, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	var uerr *UsageError
	if err := cmd.Run(); !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestConfigRejectsUnknownSubcommand(t *testing.T) {
	r := &root{program: "sketchpad"}
	cmd, err := parseConfigCmd([]string{"frobnicate"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for unknown config command")
	}
}

func TestRootFlagFallsBackToConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.rc")
	content := "output = from-config.png\n\n[canvas]\nwidth = 640\nheight = 480\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SKETCHPAD_CONFIG", cfgPath)

	r := newRoot()
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.output != "from-config.png" {
		t.Errorf("output = %q, want from-config.png", r.output)
	}
	if r.canvasW != 640 || r.canvasH != 480 {
		t.Errorf("canvas = %dx%d, want 640x480", r.canvasW, r.canvasH)
	}
}

func TestRootFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.rc")
	if err := os.WriteFile(cfgPath, []byte("output = from-config.png\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SKETCHPAD_CONFIG", cfgPath)

	r := newRoot()
	if err := r.Run([]string{"-output", "from-flag.png", "version"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.output != "from-flag.png" {
		t.Errorf("output = %q, want from-flag.png", r.output)
	}
}

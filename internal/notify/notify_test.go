package notify

import (
	"testing"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Title != "SketchPad" {
		t.Errorf("Title = %q, want SketchPad", prefs.Title)
	}
	for _, event := range []Event{EventSave, EventExport, EventCopy} {
		if prefs.Events[event].Template == "" {
			t.Errorf("no template for event %s", event)
		}
	}
}

func TestLoadPreferencesEnvOverride(t *testing.T) {
	t.Setenv("SKETCHPAD_NOTIFY_TITLE", "My Pad")
	t.Setenv("SKETCHPAD_NOTIFY_SAVE_TEXT", "Wrote %s")

	prefs := LoadPreferences()
	if prefs.Title != "My Pad" {
		t.Errorf("Title = %q, want My Pad", prefs.Title)
	}
	if got := prefs.Events[EventSave].Template; got != "Wrote %s" {
		t.Errorf("save template = %q, want Wrote %%s", got)
	}
	// Untouched templates keep their default.
	if got := prefs.Events[EventExport].Template; got != "Exported %s" {
		t.Errorf("export template = %q", got)
	}
}

func TestEventsDisabledByDefault(t *testing.T) {
	n := New(DefaultPreferences())
	for _, event := range []Event{EventSave, EventExport, EventCopy} {
		if n.enabledFor(event) {
			t.Errorf("event %s enabled by default", event)
		}
	}
	n.Enable(EventSave, true)
	if !n.enabledFor(EventSave) {
		t.Error("EventSave not enabled after Enable")
	}
	if n.enabledFor(EventExport) {
		t.Error("EventExport enabled unexpectedly")
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.Enable(EventSave, true)
	n.Save("out.png")
	n.Export("out.pdf")
	n.Copy("drawing")
}

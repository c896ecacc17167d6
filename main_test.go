package main

import (
	"testing"
)

func TestAppCommands(t *testing.T) {
	app := newApp()

	expected := []string{"render", "bench", "list-scenes"}
	for _, name := range expected {
		if app.Command(name) == nil {
			t.Errorf("Expected command %q to be registered", name)
		}
	}

	if len(app.Commands) != len(expected) {
		t.Errorf("Expected %d commands, got %d", len(expected), len(app.Commands))
	}
}

func TestRenderFlagDefaults(t *testing.T) {
	render := newApp().Command("render")
	if render == nil {
		t.Fatal("render command missing")
	}

	names := map[string]bool{}
	for _, flag := range render.Flags {
		names[flag.GetName()] = true
	}

	for _, name := range []string{"scene, s", "scene-file", "width", "height", "spp", "depth", "workers", "seed", "out-dir, o", "format, f"} {
		if !names[name] {
			t.Errorf("Expected render flag %q", name)
		}
	}
}

func TestUnknownSceneFails(t *testing.T) {
	dir := t.TempDir()
	err := newApp().Run([]string{"pathtracer", "render", "--scene", "nonexistent", "--out-dir", dir})
	if err == nil {
		t.Error("Expected error for unknown scene")
	}
}

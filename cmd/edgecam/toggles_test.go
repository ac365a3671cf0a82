package main

import (
	"testing"

	"github.com/lixenwraith/edgecam/camera"
)

func TestSessionTogglesSurviveReload(t *testing.T) {
	var tg sessionToggles

	base := camera.DefaultConfig()
	base.DrawBounds = false

	// No override yet, reload passes through
	if got := tg.apply(base); got.DrawBounds {
		t.Fatal("Reload without toggle should keep file value")
	}

	toggled := tg.flipBounds(base)
	if !toggled.DrawBounds {
		t.Fatal("flipBounds should enable bounds")
	}

	reloaded := base
	reloaded.PanSpeed = 99
	got := tg.apply(reloaded)
	if !got.DrawBounds {
		t.Error("Reload reset the keyboard bounds toggle")
	}
	if got.PanSpeed != 99 {
		t.Errorf("Reload lost file values: pan speed %v", got.PanSpeed)
	}

	if tg.flipBounds(got).DrawBounds {
		t.Error("Second flip should disable bounds")
	}
	fileOn := base
	fileOn.DrawBounds = true
	if tg.apply(fileOn).DrawBounds {
		t.Error("Keyboard off should override file on")
	}
}

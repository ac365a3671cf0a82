package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/engine"
	"github.com/lixenwraith/edgecam/vmath"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func testCamera() *engine.CameraResource {
	cfg := camera.DefaultConfig()
	cfg.DrawBounds = true
	return &engine.CameraResource{
		State:     camera.State{Position: vmath.Vec3F{}, FollowOffset: vmath.Vec3F{Y: 20}},
		Placement: camera.PlacementResolved,
		Team:      core.TeamBlue,
		Config:    cfg,
	}
}

func TestViewDrawsCameraAndHUD(t *testing.T) {
	s := newSimScreen(t, 80, 25)
	v := NewView(s)
	v.Draw(testCamera(), 42)

	// Map area is 24 rows, camera marker at its center
	if r, _, _, _ := s.GetContent(40, 12); r != '+' {
		t.Errorf("Expected camera marker at center, got %q", r)
	}

	hud := rowText(s, 24, 80)
	for _, want := range []string{"zoom", "blue", "resolved", "frame 42"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}

func TestViewDrawsBoundsWhenEnabled(t *testing.T) {
	cam := testCamera()
	// Place the camera so the left bounds face is on screen
	cam.State.Position = vmath.Vec3F{X: -90}

	s := newSimScreen(t, 80, 25)
	NewView(s).Draw(cam, 1)

	// Face at x=-100 is 10 world units left of center: 5 columns at 2 units per column
	if r, _, _, _ := s.GetContent(35, 12); r != '│' {
		t.Errorf("Expected bounds edge at column 35, got %q", r)
	}

	cam.Config.DrawBounds = false
	NewView(s).Draw(cam, 2)
	if r, _, _, _ := s.GetContent(35, 12); r == '│' {
		t.Error("Bounds drawn while disabled")
	}
}

func TestViewAnchorMarkers(t *testing.T) {
	cam := testCamera()
	cam.Config.Anchors.Blue = vmath.Vec3F{X: 20, Z: 8}

	s := newSimScreen(t, 80, 25)
	NewView(s).Draw(cam, 1)

	// 20/2 = 10 columns right, 8/4 = 2 rows down
	if r, _, _, _ := s.GetContent(50, 14); r != 'B' {
		t.Errorf("Expected blue anchor marker, got %q", r)
	}
}

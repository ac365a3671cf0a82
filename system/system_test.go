package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/component"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/engine"
	"github.com/lixenwraith/edgecam/event"
	"github.com/lixenwraith/edgecam/status"
	"github.com/lixenwraith/edgecam/vmath"
)

const frame = 16 * time.Millisecond

func newTestWorld(t *testing.T, request core.TeamType, hasRequest bool, match MatchConfig) (*engine.World, *CameraSystem, *MatchSystem, *[]event.GameEvent) {
	t.Helper()
	w := engine.NewWorld()
	if hasRequest {
		w.SetTeamRequest(request)
	}
	ms := NewMatchSystem(w, match, nil)
	cs := NewCameraSystem(w, camera.DefaultConfig(), nil)
	w.AddSystem(cs)
	w.AddSystem(ms)

	var events []event.GameEvent
	w.Subscribe(func(ev event.GameEvent) { events = append(events, ev) })
	return w, cs, ms, &events
}

func tick(w *engine.World, n int) {
	for i := 0; i < n; i++ {
		w.Tick(time.Time{}, frame)
	}
}

func TestCameraSystemImmediatePlacement(t *testing.T) {
	w, cs, _, events := newTestWorld(t, core.TeamRed, true, MatchConfig{AssignAfterFrames: 5})

	cfg := camera.DefaultConfig()
	if cs.Controller().Position() != cfg.Anchors.Red {
		t.Fatalf("Expected red anchor at init, got %+v", cs.Controller().Position())
	}

	tick(w, 10)

	placements := 0
	for _, ev := range *events {
		if ev.Type == event.EventPlacementResolved {
			placements++
			p := ev.Payload.(*event.PlacementPayload)
			if p.Deferred || p.Team != core.TeamRed {
				t.Errorf("Unexpected payload %+v", p)
			}
		}
	}
	if placements != 1 {
		t.Errorf("Expected exactly one placement event, got %d", placements)
	}
	if cs.Controller().Placement().Polls() != 0 {
		t.Errorf("Polling ran after synchronous placement: %d", cs.Controller().Placement().Polls())
	}
}

func TestCameraSystemDeferredPlacement(t *testing.T) {
	w, cs, ms, events := newTestWorld(t, core.TeamAutoSelect, true, MatchConfig{AssignAfterFrames: 10, AutoTeam: core.TeamRed, ClientID: 7})
	cfg := camera.DefaultConfig()

	tick(w, 9)
	if cs.Controller().Placement().Resolved() || ms.Assigned() {
		t.Fatal("Resolved before assignment frame")
	}
	if cs.Controller().Position() != cfg.Anchors.Spectator {
		t.Errorf("Expected spectator anchor while waiting, got %+v", cs.Controller().Position())
	}

	tick(w, 1)
	if !cs.Controller().Placement().Resolved() {
		t.Fatal("Expected placement on frame 10")
	}
	if cs.Controller().Position() != cfg.Anchors.Red {
		t.Errorf("Expected red anchor, got %+v", cs.Controller().Position())
	}

	// Events surface on the following dispatch
	tick(w, 1)
	var sawTeam, sawPlacement bool
	for _, ev := range *events {
		switch ev.Type {
		case event.EventTeamAssigned:
			sawTeam = ev.Payload.(*event.TeamPayload).ClientID == 7
		case event.EventPlacementResolved:
			sawPlacement = ev.Payload.(*event.PlacementPayload).Deferred
		}
	}
	if !sawTeam || !sawPlacement {
		t.Errorf("Missing events: team=%v placement=%v", sawTeam, sawPlacement)
	}

	snap := w.Resources.Status.Snapshot()
	if snap[status.KeyPlacementTeam] != "red" || snap[status.KeyPlacementResolved] != "true" {
		t.Errorf("Unexpected status snapshot %v", snap)
	}
	if snap[status.KeyCameraPosition] != "50.00,0.00,50.00" || snap[status.KeyFrame] != "11" {
		t.Errorf("Unexpected position/frame metrics %v", snap)
	}
	if w.Resources.Camera.Team != core.TeamRed {
		t.Errorf("Camera resource not published: %+v", w.Resources.Camera)
	}
}

func TestCameraSystemClampEventOnce(t *testing.T) {
	w, _, _, events := newTestWorld(t, core.TeamSpectator, true, DefaultMatchConfig())
	w.Resources.Input.Focused = true
	w.Resources.Input.Pointer = vmath.Vec2F{X: 0, Y: 0.5}

	// Default pan speed covers the 100 unit half-width in well under 300 frames
	tick(w, 300)
	tick(w, 1)

	clamps := 0
	for _, ev := range *events {
		if ev.Type == event.EventCameraClamped {
			clamps++
		}
	}
	if clamps != 1 {
		t.Errorf("Expected one clamp event while holding the edge, got %d", clamps)
	}
	if w.Resources.Camera.State.Position.X != -100 {
		t.Errorf("Expected x=-100, got %v", w.Resources.Camera.State.Position.X)
	}
}

func TestCameraSystemAppliesConfigEvent(t *testing.T) {
	w, cs, _, _ := newTestWorld(t, core.TeamBlue, true, DefaultMatchConfig())

	cfg := camera.DefaultConfig()
	cfg.MaxZoomDistance = 8
	cfg.MinZoomDistance = 6
	w.PushEvent(event.EventConfigApplied, &event.ConfigPayload{Config: cfg, Source: "test"})
	tick(w, 1)

	if cs.Controller().Config().MaxZoomDistance != 8 {
		t.Fatal("Config not applied")
	}
	if z := cs.Controller().Zoom(); z != 8 {
		t.Errorf("Expected zoom re-clamped to 8, got %v", z)
	}
	if !cs.Controller().Placement().Resolved() || cs.Controller().Placement().Team() != core.TeamBlue {
		t.Error("Config reload must not reset placement")
	}
}

func TestWorldTeamResolverNeedsTeamComponent(t *testing.T) {
	w := engine.NewWorld()
	r := NewWorldTeamResolver(w)

	champ := w.CreateEntity()
	w.Components.OwnerChampion.Set(champ, component.OwnerChampionComponent{ClientID: 1})
	if _, ok := r.TryFindLocallyOwnedAgentTeam(); ok {
		t.Error("Champion without team must read as not found")
	}

	w.Components.GameTeam.Set(champ, component.GameTeamComponent{Value: core.TeamBlue})
	if team, ok := r.TryFindLocallyOwnedAgentTeam(); !ok || team != core.TeamBlue {
		t.Errorf("Expected blue, got %v %v", team, ok)
	}
}

func TestMatchAutoBalance(t *testing.T) {
	w := engine.NewWorld()
	w.SetTeamRequest(core.TeamAutoSelect)
	ms := NewMatchSystem(w, MatchConfig{ClientID: 1}, nil)
	ms.AddRemotePlayer(2, core.TeamBlue)
	ms.AddRemotePlayer(3, core.TeamBlue)
	ms.AddRemotePlayer(4, core.TeamRed)
	w.AddSystem(ms)

	tick(w, 1)

	champ, ok := w.TryFindOwnedChampion()
	if !ok {
		t.Fatal("Champion not spawned")
	}
	team, _ := w.Components.GameTeam.Get(champ)
	if team.Value != core.TeamRed {
		t.Errorf("Expected red for balance, got %v", team.Value)
	}
	if got := w.Resources.Status.Ints.Get(status.KeyMatchPlayers).Load(); got != 4 {
		t.Errorf("Expected 4 players, got %d", got)
	}
}

func TestMatchSpectatorSpawnsNothing(t *testing.T) {
	w := engine.NewWorld()
	w.SetTeamRequest(core.TeamSpectator)
	ms := NewMatchSystem(w, MatchConfig{}, nil)
	w.AddSystem(ms)

	tick(w, 3)
	if _, ok := w.TryFindOwnedChampion(); ok {
		t.Error("Spectator must not own a champion")
	}
	if !ms.Assigned() {
		t.Error("Spectator should still be processed")
	}
}

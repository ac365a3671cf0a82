package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/edgecam/component"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/event"
	"github.com/lixenwraith/edgecam/parameter"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	seen     []event.GameEvent
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update()       { *s.log = append(*s.log, s.name) }
func (s *recordingSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTeamAssigned}
}
func (s *recordingSystem) HandleEvent(ev event.GameEvent) { s.seen = append(s.seen, ev) }
func (s *recordingSystem) Teardown()                      { *s.log = append(*s.log, "teardown:"+s.name) }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "camera", priority: 20, log: &log})
	w.AddSystem(&recordingSystem{name: "match", priority: 10, log: &log})

	w.Update()
	if len(log) != 2 || log[0] != "match" || log[1] != "camera" {
		t.Errorf("Unexpected order: %v", log)
	}
}

func TestEventsDispatchNextUpdate(t *testing.T) {
	w := NewWorld()
	var log []string
	sys := &recordingSystem{name: "s", log: &log}
	w.AddSystem(sys)

	var heard []event.EventType
	w.Subscribe(func(ev event.GameEvent) { heard = append(heard, ev.Type) })

	w.Tick(time.Unix(0, 0), 16*time.Millisecond)
	w.PushEvent(event.EventTeamAssigned, &event.TeamPayload{Team: core.TeamRed})
	w.PushEvent(event.EventZoomChanged, nil)
	if len(sys.seen) != 0 {
		t.Fatal("Events must not be dispatched before next update")
	}

	w.Tick(time.Unix(0, 0), 16*time.Millisecond)
	if len(sys.seen) != 1 || sys.seen[0].Frame != 1 {
		t.Errorf("Handler should get one event from frame 1, got %+v", sys.seen)
	}
	if len(heard) != 2 {
		t.Errorf("Listener should hear both events, got %v", heard)
	}
}

func TestShutdownReverseOrder(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "a", priority: 1, log: &log})
	w.AddSystem(&recordingSystem{name: "b", priority: 2, log: &log})
	w.Shutdown()
	if len(log) != 2 || log[0] != "teardown:b" || log[1] != "teardown:a" {
		t.Errorf("Unexpected teardown order: %v", log)
	}
}

func TestTeamQueries(t *testing.T) {
	w := NewWorld()
	if _, ok := w.TryGetTeamRequest(); ok {
		t.Error("No request expected on empty world")
	}
	if _, ok := w.TryFindOwnedChampion(); ok {
		t.Error("No champion expected on empty world")
	}

	e1 := w.SetTeamRequest(core.TeamAutoSelect)
	e2 := w.SetTeamRequest(core.TeamBlue)
	if e1 != e2 {
		t.Error("Team request must stay a singleton")
	}
	if team, ok := w.TryGetTeamRequest(); !ok || team != core.TeamBlue {
		t.Errorf("Expected blue request, got %v %v", team, ok)
	}

	champ := w.CreateEntity()
	w.Components.OwnerChampion.Set(champ, component.OwnerChampionComponent{ClientID: 1})
	w.Components.GameTeam.Set(champ, component.GameTeamComponent{Value: core.TeamRed})

	got, ok := w.TryFindOwnedChampion()
	if !ok || got != champ {
		t.Fatalf("Expected champion %d, got %d", champ, got)
	}

	w.DestroyEntity(champ)
	if _, ok := w.TryFindOwnedChampion(); ok {
		t.Error("Destroyed champion still found")
	}
	if w.Components.GameTeam.Has(champ) {
		t.Error("GameTeam not removed on destroy")
	}
}

func TestFrameClockCapsDelta(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	fc := NewFrameClock(clock)

	clock.Advance(16 * time.Millisecond)
	if _, dt := fc.Tick(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms, got %v", dt)
	}

	clock.Advance(5 * time.Second)
	if _, dt := fc.Tick(); dt != parameter.MaxFrameDelta {
		t.Errorf("Expected cap %v, got %v", parameter.MaxFrameDelta, dt)
	}

	clock.Set(start)
	if _, dt := fc.Tick(); dt != 0 {
		t.Errorf("Backwards clock should yield 0, got %v", dt)
	}
}

func TestStoreOrderAndFirst(t *testing.T) {
	s := NewStore[int]()
	s.Set(3, 30)
	s.Set(1, 10)
	s.Set(2, 20)
	s.Remove(3)

	e, v, ok := s.First()
	if !ok || e != 1 || v != 10 {
		t.Errorf("Expected first (1,10), got (%d,%d,%v)", e, v, ok)
	}
	if all := s.All(); len(all) != 2 || all[1] != 2 {
		t.Errorf("Unexpected order %v", all)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear left entries")
	}
}

func TestPushEventFromOtherGoroutine(t *testing.T) {
	w := NewWorld()

	var stamps []int64
	w.Subscribe(func(ev event.GameEvent) { stamps = append(stamps, ev.Frame) })

	// Stay under queue capacity so no event is overwritten
	pushes := parameter.EventQueueSize / 2
	const ticks = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < pushes; i++ {
			w.PushEvent(event.EventConfigApplied, nil)
		}
	}()

	clock := NewManualClock(time.Unix(0, 0))
	for i := 0; i < ticks; i++ {
		w.Tick(clock.Advance(time.Millisecond), time.Millisecond)
	}
	wg.Wait()
	w.Update()

	if len(stamps) != pushes {
		t.Fatalf("Expected %d events, got %d", pushes, len(stamps))
	}
	for i, f := range stamps {
		if f < 0 || f > ticks {
			t.Errorf("Event %d stamped with frame %d outside [0,%d]", i, f, ticks)
		}
		if i > 0 && f < stamps[i-1] {
			t.Errorf("Event %d frame %d precedes previous %d", i, f, stamps[i-1])
		}
	}
}

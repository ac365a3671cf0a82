package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/edgecam/component"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/event"
	"github.com/lixenwraith/edgecam/status"
)

// Components groups the typed component stores
type Components struct {
	TeamRequest   *Store[component.TeamRequestComponent]
	GameTeam      *Store[component.GameTeamComponent]
	OwnerChampion *Store[component.OwnerChampionComponent]
	Player        *Store[component.PlayerComponent]
}

// World contains entities, resources and the ordered system list
// Update and Tick are driven by a single frame loop
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *Resource
	Components Components

	systems   []System
	handlers  map[event.EventType][]EventHandler
	listeners []func(event.GameEvent)

	// frame mirrors Time.FrameNumber for producers outside the frame loop
	frame atomic.Int64

	statFrame   *atomic.Int64
	statDropped *atomic.Int64
}

// NewWorld creates an empty world with initialized resources
func NewWorld() *World {
	res := newResource()
	return &World{
		nextEntityID: 1,
		Resources:    res,
		Components: Components{
			TeamRequest:   NewStore[component.TeamRequestComponent](),
			GameTeam:      NewStore[component.GameTeamComponent](),
			OwnerChampion: NewStore[component.OwnerChampionComponent](),
			Player:        NewStore[component.PlayerComponent](),
		},
		handlers:    make(map[event.EventType][]EventHandler),
		statFrame:   res.Status.Ints.Get(status.KeyFrame),
		statDropped: res.Status.Ints.Get(status.KeyEventsDropped),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.TeamRequest.Remove(e)
	w.Components.GameTeam.Remove(e)
	w.Components.OwnerChampion.Remove(e)
	w.Components.Player.Remove(e)
}

// AddSystem registers a system, keeps priority order and wires its event handler
func (w *World) AddSystem(s System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})

	if h, ok := s.(EventHandler); ok {
		for _, t := range h.EventTypes() {
			w.handlers[t] = append(w.handlers[t], h)
		}
	}
}

// Systems returns a copy of registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Subscribe registers a listener that sees every dispatched event after system handlers
// Used by the host for audio cues and logging
func (w *World) Subscribe(fn func(event.GameEvent)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, fn)
}

// PushEvent emits an event stamped with the current frame
// Safe from any goroutine
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// Tick advances frame time and runs one Update
func (w *World) Tick(now time.Time, dt time.Duration) {
	tr := w.Resources.Time
	tr.Update(now, dt, tr.FrameNumber+1)
	w.frame.Store(tr.FrameNumber)
	w.statFrame.Store(tr.FrameNumber)
	w.Update()
}

// Update dispatches pending events, then runs all systems in priority order
// Events pushed during this update are dispatched at the start of the next one
func (w *World) Update() {
	w.DispatchEvents()

	for _, s := range w.Systems() {
		s.Update()
	}
}

// DispatchEvents drains the queue into handlers and listeners
func (w *World) DispatchEvents() {
	q := w.Resources.Event.Queue
	w.statDropped.Store(int64(q.Dropped()))
	events := q.Consume()
	if len(events) == 0 {
		return
	}

	w.mu.RLock()
	handlers := w.handlers
	listeners := w.listeners
	w.mu.RUnlock()

	for _, ev := range events {
		for _, h := range handlers[ev.Type] {
			h.HandleEvent(ev)
		}
		for _, fn := range listeners {
			fn(ev)
		}
	}
}

// Shutdown tears down systems in reverse order and flushes remaining events
func (w *World) Shutdown() {
	systems := w.Systems()
	for i := len(systems) - 1; i >= 0; i-- {
		if td, ok := systems[i].(Teardowner); ok {
			td.Teardown()
		}
	}
	w.DispatchEvents()
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}

// === Queries ===

// TryGetTeamRequest returns the singleton client team request
func (w *World) TryGetTeamRequest() (core.TeamType, bool) {
	_, req, ok := w.Components.TeamRequest.First()
	if !ok {
		return core.TeamNone, false
	}
	return req.Value, true
}

// TryFindOwnedChampion returns the locally owned champion entity, if spawned
func (w *World) TryFindOwnedChampion() (core.Entity, bool) {
	e, _, ok := w.Components.OwnerChampion.First()
	return e, ok
}

// SetTeamRequest creates or replaces the singleton client team request
func (w *World) SetTeamRequest(team core.TeamType) core.Entity {
	if e, _, ok := w.Components.TeamRequest.First(); ok {
		w.Components.TeamRequest.Set(e, component.TeamRequestComponent{Value: team})
		return e
	}
	e := w.CreateEntity()
	w.Components.TeamRequest.Set(e, component.TeamRequestComponent{Value: team})
	return e
}

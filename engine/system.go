package engine

import "github.com/lixenwraith/edgecam/event"

// System is a per-frame unit of work run by World.Update in priority order
type System interface {
	Name() string
	// Priority orders execution, lower runs first
	Priority() int
	Update()
}

// EventHandler is implemented by systems that consume events
type EventHandler interface {
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
}

// Teardowner is implemented by systems holding state that must be released on world shutdown
type Teardowner interface {
	Teardown()
}

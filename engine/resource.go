package engine

import (
	"time"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/event"
	"github.com/lixenwraith/edgecam/status"
	"github.com/lixenwraith/edgecam/vmath"
)

// Resource holds singleton world resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Input  *InputResource
	Camera *CameraResource
	Event  *EventQueueResource

	// Telemetry
	Status *status.Registry
}

func newResource() *Resource {
	return &Resource{
		Time:   &TimeResource{},
		Input:  &InputResource{Pointer: vmath.Vec2F{X: 0.5, Y: 0.5}},
		Camera: &CameraResource{},
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		Status: status.NewRegistry(),
	}
}

// TimeResource is updated by World.Tick at the start of a frame
type TimeResource struct {
	// RealTime is the wall-clock time of the frame
	RealTime time.Time

	// DeltaTime is the duration since the last frame, capped by the frame clock
	DeltaTime time.Duration

	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// InputResource is the pointer/focus/scroll sample for the current frame
// Written by the host loop before World.Tick
type InputResource struct {
	Pointer vmath.Vec2F
	Focused bool
	Scroll  float64
}

// CameraResource is the rig state published for renderers after each frame
type CameraResource struct {
	State     camera.State
	Placement camera.PlacementStatus
	Team      core.TeamType
	Config    camera.Config
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

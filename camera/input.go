package camera

import (
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/vmath"
)

// Input is the per-frame sample consumed by the controller
// Pointer position is normalized to [0,1] on both axes, origin at top-left
type Input interface {
	PointerPosition() vmath.Vec2F
	HasFocus() bool
	ScrollDelta() float64
	DeltaTime() float64
}

// TeamResolver is the host-side source of team assignment
// Both queries are non-blocking; ok=false means "not yet"
type TeamResolver interface {
	// TryGetLocalTeamRequest returns the team the local client asked for, checked once at init
	TryGetLocalTeamRequest() (core.TeamType, bool)
	// TryFindLocallyOwnedAgentTeam returns the team of the locally owned agent, polled until found
	TryFindLocallyOwnedAgentTeam() (core.TeamType, bool)
}

// FrameInput is a plain value implementation of Input
type FrameInput struct {
	Pointer vmath.Vec2F
	Focused bool
	Scroll  float64
	DT      float64
}

func (f FrameInput) PointerPosition() vmath.Vec2F { return f.Pointer }
func (f FrameInput) HasFocus() bool               { return f.Focused }
func (f FrameInput) ScrollDelta() float64         { return f.Scroll }
func (f FrameInput) DeltaTime() float64           { return f.DT }

// CenterPointer is a focused input with the pointer at screen center and no scroll
func CenterPointer(dt float64) FrameInput {
	return FrameInput{Pointer: vmath.Vec2F{X: 0.5, Y: 0.5}, Focused: true, DT: dt}
}

// NoResolver never yields a team, the camera stays at the spectator anchor
type NoResolver struct{}

func (NoResolver) TryGetLocalTeamRequest() (core.TeamType, bool)       { return core.TeamNone, false }
func (NoResolver) TryFindLocallyOwnedAgentTeam() (core.TeamType, bool) { return core.TeamNone, false }

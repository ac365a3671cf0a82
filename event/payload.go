package event

import (
	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/vmath"
)

// PlacementPayload describes a committed spawn placement
type PlacementPayload struct {
	Team     core.TeamType
	Position vmath.Vec3F
	// Deferred is true when placement came from per-frame polling rather than the init request
	Deferred bool
}

// CameraPayload is a snapshot of the rig after the frame
type CameraPayload struct {
	Position vmath.Vec3F
	Zoom     float64
}

// ConfigPayload carries a validated config for the controller
type ConfigPayload struct {
	Config camera.Config
	Source string
}

// TeamPayload describes a server-side team assignment
type TeamPayload struct {
	ClientID uint32
	Team     core.TeamType
}

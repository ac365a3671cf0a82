package camera

import (
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/parameter"
	"github.com/lixenwraith/edgecam/vmath"
)

// Anchors maps teams to starting world positions
type Anchors struct {
	Blue      vmath.Vec3F
	Red       vmath.Vec3F
	Spectator vmath.Vec3F
}

// For returns the anchor for team, unknown teams fall back to Spectator
func (a Anchors) For(team core.TeamType) vmath.Vec3F {
	switch team {
	case core.TeamBlue:
		return a.Blue
	case core.TeamRed:
		return a.Red
	default:
		return a.Spectator
	}
}

// Config is the controller tuning surface
type Config struct {
	// EdgePercent is the hot band size in percent of screen width (X) and height (Y)
	EdgePercent vmath.Vec2F
	PanSpeed    float64

	ZoomSpeed       float64
	MinZoomDistance float64
	MaxZoomDistance float64
	// FollowOffset is the initial rig offset, its Y component is the zoom distance
	FollowOffset vmath.Vec3F

	Bounds  vmath.Box
	Anchors Anchors

	// DrawBounds enables the bounds wireframe in debug views
	DrawBounds bool
}

// EdgeThreshold converts EdgePercent to screen fractions
func (c Config) EdgeThreshold() vmath.Vec2F {
	return vmath.Vec2F{X: c.EdgePercent.X * 0.01, Y: c.EdgePercent.Y * 0.01}
}

// DefaultConfig returns tuning from the parameter package
func DefaultConfig() Config {
	v3 := func(a [3]float64) vmath.Vec3F { return vmath.Vec3F{X: a[0], Y: a[1], Z: a[2]} }
	return Config{
		EdgePercent:     vmath.Vec2F{X: parameter.CameraEdgePercentX, Y: parameter.CameraEdgePercentY},
		PanSpeed:        parameter.CameraPanSpeed,
		ZoomSpeed:       parameter.CameraZoomSpeed,
		MinZoomDistance: parameter.CameraMinZoomDistance,
		MaxZoomDistance: parameter.CameraMaxZoomDistance,
		FollowOffset:    vmath.Vec3F{Y: parameter.CameraFollowOffsetY, Z: parameter.CameraFollowOffsetZ},
		Bounds: vmath.Box{
			Extents: vmath.Vec3F{
				X: parameter.CameraBoundsExtentX,
				Y: parameter.CameraBoundsExtentY,
				Z: parameter.CameraBoundsExtentZ,
			},
		},
		Anchors: Anchors{
			Blue:      v3(parameter.CameraAnchorBlue),
			Red:       v3(parameter.CameraAnchorRed),
			Spectator: v3(parameter.CameraAnchorSpectator),
		},
	}
}

package parameter

// Edge-pan defaults
// Detection band is given in percent of screen size, converted to a fraction at config apply
const (
	// CameraEdgePercentX is the horizontal hot band width in percent of screen width
	CameraEdgePercentX = 5.0

	// CameraEdgePercentY is the vertical hot band height in percent of screen height
	CameraEdgePercentY = 5.0

	// CameraPanSpeed is world units per second at full edge deflection
	CameraPanSpeed = 40.0
)

// Zoom defaults, zoom is the Y component of the follow offset
const (
	CameraZoomSpeed       = 300.0
	CameraMinZoomDistance = 5.0
	CameraMaxZoomDistance = 40.0

	// CameraFollowOffsetY is the initial zoom distance
	CameraFollowOffsetY = 20.0
	// CameraFollowOffsetZ tilts the rig back from the tracked point
	CameraFollowOffsetZ = -10.0

	// ScrollEpsilon is the scroll magnitude below which zoom is skipped
	ScrollEpsilon = 1e-6
)

// Playable area defaults, a flat box on the X/Z plane
const (
	CameraBoundsExtentX = 100.0
	CameraBoundsExtentY = 0.0
	CameraBoundsExtentZ = 100.0
)

// Team anchor defaults (X, Y, Z)
var (
	CameraAnchorRed       = [3]float64{50, 0, 50}
	CameraAnchorBlue      = [3]float64{-50, 0, -50}
	CameraAnchorSpectator = [3]float64{0, 0, 0}
)

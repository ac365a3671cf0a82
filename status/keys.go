package status

// Metric keys published by the camera and match systems
const (
	KeyCameraPosition = "camera.position"
	KeyCameraX        = "camera.x"
	KeyCameraY        = "camera.y"
	KeyCameraZ        = "camera.z"
	KeyCameraZoom     = "camera.zoom"
	KeyCameraClamps   = "camera.clamps"

	KeyPlacementResolved = "placement.resolved"
	KeyPlacementTeam     = "placement.team"
	KeyPlacementPolls    = "placement.polls"

	KeyMatchPlayers = "match.players"

	KeyFrame         = "engine.frame"
	KeyEventsDropped = "engine.events_dropped"
)

package event

// EventType represents the type of frame event
type EventType int

const (
	// EventPlacementResolved fires once when the camera commits its starting anchor
	// Trigger: CameraSystem | Payload: *PlacementPayload
	EventPlacementResolved EventType = iota

	// EventCameraClamped fires on the frame the bounds clamp starts correcting the position
	// Trigger: CameraSystem | Payload: *CameraPayload
	EventCameraClamped

	// EventZoomChanged fires on frames where scroll changed the zoom distance
	// Trigger: CameraSystem | Payload: *CameraPayload
	EventZoomChanged

	// EventConfigApplied carries a reloaded camera config to apply between frames
	// Trigger: config watcher | Consumer: CameraSystem | Payload: *ConfigPayload
	EventConfigApplied

	// EventTeamAssigned fires when the match stand-in spawns the local champion
	// Trigger: MatchSystem | Payload: *TeamPayload
	EventTeamAssigned
)

// GameEvent is a typed event stamped with the frame it was produced in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

func (t EventType) String() string {
	switch t {
	case EventPlacementResolved:
		return "placement_resolved"
	case EventCameraClamped:
		return "camera_clamped"
	case EventZoomChanged:
		return "zoom_changed"
	case EventConfigApplied:
		return "config_applied"
	case EventTeamAssigned:
		return "team_assigned"
	default:
		return "unknown"
	}
}

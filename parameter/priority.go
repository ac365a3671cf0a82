package parameter

// System Execution Priorities (lower runs first)
const (
	// PriorityMatch runs team assignment before the camera reads it
	PriorityMatch  = 10
	PriorityCamera = 20
)

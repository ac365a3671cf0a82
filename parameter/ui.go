package parameter

// Top-down terminal view
const (
	// ViewWorldPerCellX is world units covered by one terminal column at zoom reference
	ViewWorldPerCellX = 2.0
	// ViewWorldPerCellZ is larger than X since terminal cells are roughly twice as tall as wide
	ViewWorldPerCellZ = 4.0
	// ViewZoomReference is the zoom distance at which the scales above apply
	ViewZoomReference = 20.0

	// HUDHeight is rows reserved at the bottom for the status line
	HUDHeight = 1
)

// Gizmo snapshot
const (
	GizmoPixelsPerUnit = 2
	GizmoPadding       = 8
	GizmoUpscale       = 2
	// GizmoMaxPixels caps the upscaled image area; pixels per unit shrink to fit
	GizmoMaxPixels = 4 << 20
)

package camera

import (
	"github.com/lixenwraith/edgecam/parameter"
	"github.com/lixenwraith/edgecam/vmath"
)

// ApplyZoom maps scroll to a clamped zoom distance
// Positive scroll (toward the scene) shrinks the distance. Returns false when scroll is within epsilon
func ApplyZoom(offset, scroll, speed, dt, minDist, maxDist float64) (float64, bool) {
	if vmath.AbsF(scroll) <= parameter.ScrollEpsilon {
		return offset, false
	}
	offset -= scroll * speed * dt
	return vmath.ClampF(offset, minDist, maxDist), true
}

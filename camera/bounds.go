package camera

import (
	"github.com/lixenwraith/edgecam/vmath"
)

// ClampPosition projects pos into bounds after the full-frame move
// No swept test: a large step lands on the nearest face, it does not stop at first contact
func ClampPosition(pos vmath.Vec3F, bounds vmath.Box) (vmath.Vec3F, bool) {
	if bounds.Contains(pos) {
		return pos, false
	}
	return bounds.ClosestPoint(pos), true
}

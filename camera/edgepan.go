package camera

import (
	"github.com/lixenwraith/edgecam/vmath"
)

// EdgeDirection converts pointer proximity to screen edges into a planar unit direction
// Threshold is a fraction of screen size per axis. Returns zero when unfocused or outside all bands
func EdgeDirection(pointer vmath.Vec2F, focused bool, threshold vmath.Vec2F) vmath.Vec3F {
	if !focused {
		return vmath.Vec3F{}
	}

	var dir vmath.Vec3F
	if pointer.X < threshold.X {
		dir = vmath.V3FAdd(dir, vmath.V3FLeft)
	}
	if pointer.X > 1-threshold.X {
		dir = vmath.V3FAdd(dir, vmath.V3FRight)
	}
	if pointer.Y < threshold.Y {
		dir = vmath.V3FAdd(dir, vmath.V3FBack)
	}
	if pointer.Y > 1-threshold.Y {
		dir = vmath.V3FAdd(dir, vmath.V3FForward)
	}

	return vmath.V3FNormalize(dir)
}

// Pan advances position along dir by speed*dt
func Pan(pos, dir vmath.Vec3F, speed, dt float64) vmath.Vec3F {
	return vmath.V3FAdd(pos, vmath.V3FScale(dir, speed*dt))
}

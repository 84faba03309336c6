package table

import (
	"cogentcore.org/core/math32"

	"periodic-table/internal/layout"
)

// minPolar keeps the camera off the poles so the up vector stays usable.
const minPolar = 0.01

// Controls orbits the camera around Target. Input adds velocity; Update applies it
// and decays it by Damping.
type Controls struct {
	Target      math32.Vector3
	Enabled     bool
	MinDistance float32
	MaxDistance float32
	// Damping is the share of velocity lost each update, in (0,1]. 1 stops at once.
	Damping float32
	// ZoomSpeed scales one wheel step.
	ZoomSpeed float32

	yaw, pitch, zoom float32
}

func newControls(target math32.Vector3, damping, maxDistance float32) *Controls {
	return &Controls{
		Target:      target,
		Enabled:     true,
		MinDistance: 1,
		MaxDistance: maxDistance,
		Damping:     damping,
		ZoomSpeed:   0.1,
	}
}

// Rotate feeds a pointer drag of dx, dy pixels in a viewport height pixels tall.
// A drag across the full height turns the camera once around.
func (oc *Controls) Rotate(dx, dy float32, height int) {
	if !oc.Enabled || height <= 0 {
		return
	}
	step := 2 * math32.Pi / float32(height)
	oc.yaw += dx * step
	oc.pitch += dy * step
}

// Zoom feeds wheel steps. Positive steps move closer.
func (oc *Controls) Zoom(steps float32) {
	if !oc.Enabled {
		return
	}
	oc.zoom += steps * oc.ZoomSpeed
}

// Moving reports whether velocity is left to apply.
func (oc *Controls) Moving() bool {
	return oc.yaw != 0 || oc.pitch != 0 || oc.zoom != 0
}

// Stop drops any velocity.
func (oc *Controls) Stop() {
	oc.yaw, oc.pitch, oc.zoom = 0, 0, 0
}

// Update moves cam around Target by the current velocity, clamps the distance and
// points cam at Target.
func (oc *Controls) Update(cam *Camera) {
	offset := cam.Position.Sub(oc.Target)
	r := offset.Length()
	if oc.Moving() && r > 0 {
		theta := math32.Atan2(offset.X, offset.Z) - oc.yaw
		phi := math32.Acos(math32.Clamp(offset.Y/r, -1, 1)) - oc.pitch
		phi = math32.Clamp(phi, minPolar, math32.Pi-minPolar)
		r *= 1 - oc.zoom
		r = oc.clampDistance(r)
		offset = layout.Spherical(r, phi, theta)
	} else if c := oc.clampDistance(r); c != r && r > 0 {
		offset = offset.MulScalar(c / r)
	}
	cam.Position = oc.Target.Add(offset)
	cam.Target = oc.Target

	keep := 1 - oc.Damping
	if oc.Damping <= 0 || oc.Damping >= 1 {
		keep = 0
	}
	oc.yaw *= keep
	oc.pitch *= keep
	oc.zoom *= keep
	const rest = 1e-5
	if math32.Abs(oc.yaw) < rest && math32.Abs(oc.pitch) < rest && math32.Abs(oc.zoom) < rest {
		oc.Stop()
	}
}

func (oc *Controls) clampDistance(r float32) float32 {
	if oc.MinDistance > 0 && r < oc.MinDistance {
		r = oc.MinDistance
	}
	if oc.MaxDistance > 0 && r > oc.MaxDistance {
		r = oc.MaxDistance
	}
	return r
}

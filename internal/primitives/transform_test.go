package primitives

import (
	"testing"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertNear(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)
	assert.InDelta(t, want.Z, got.Z, 1e-4)
}

func TestFaceTransform(t *testing.T) {
	// quad corner at +X, top edge (raylib plane z = -0.5)
	corner := rl.NewVector3(0.5, 0, -0.5)
	normal := rl.NewVector3(0, 1, 0)
	at := math32.Vec3(100, 0, 0)
	ident := math32.NewQuat(0, 0, 0, 1)

	m := FaceTransform(at, ident, 120, 160, 0.01, false)
	assertNear(t, rl.NewVector3(1.6, 0.8, 0), rl.Vector3Transform(corner, m))

	back := FaceTransform(at, ident, 120, 160, 0.01, true)
	assertNear(t, rl.NewVector3(0.4, 0.8, 0), rl.Vector3Transform(corner, back))

	// a half turn about Y swaps the faces
	turned := FaceTransform(math32.Vec3(0, 0, 0), math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.Pi), 1, 1, 1, false)
	origin := rl.Vector3Transform(rl.NewVector3(0, 0, 0), turned)
	tip := rl.Vector3Transform(normal, turned)
	assertNear(t, rl.NewVector3(0, 0, -1), rl.Vector3Subtract(tip, origin))
}

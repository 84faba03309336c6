package primitives

import (
	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FaceTransform places the unit quad as a width×height face at position with rotation,
// all multiplied by scale. The quad faces +Z of rotation, or -Z when back is set.
func FaceTransform(position math32.Vector3, rotation math32.Quat, width, height, scale float32, back bool) rl.Matrix {
	// plane normal +Y to +Z
	m := rl.MatrixRotateX(math32.Pi / 2)
	m = rl.MatrixMultiply(m, rl.MatrixScale(width*scale, height*scale, 1))
	if back {
		m = rl.MatrixMultiply(m, rl.MatrixRotateY(math32.Pi))
	}
	q := rl.Quaternion{X: rotation.X, Y: rotation.Y, Z: rotation.Z, W: rotation.W}
	m = rl.MatrixMultiply(m, rl.QuaternionToMatrix(q))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position.X*scale, position.Y*scale, position.Z*scale))
}

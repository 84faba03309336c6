package table

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Camera is a perspective camera in world units. FOV is the vertical field of view in
// degrees.
type Camera struct {
	Position math32.Vector3
	Target   math32.Vector3
	Up       math32.Vector3
	FOV      float32
	Aspect   float32
	Near     float32
	Far      float32
}

// Forward is the unit view direction.
func (c Camera) Forward() math32.Vector3 {
	return c.Target.Sub(c.Position).Normal()
}

// Ray returns the ray from the camera through a point in normalized device
// coordinates, x and y in [-1,1] with +y up.
func (c Camera) Ray(ndcX, ndcY float32) math32.Ray {
	fwd := c.Forward()
	right := fwd.Cross(c.Up).Normal()
	up := right.Cross(fwd)
	tanHalf := math32.Tan(math32.DegToRad(c.FOV) / 2)
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	dir := fwd.
		Add(right.MulScalar(ndcX * tanHalf * aspect)).
		Add(up.MulScalar(ndcY * tanHalf)).
		Normal()
	return math32.Ray{Origin: c.Position, Dir: dir}
}

func (c Camera) String() string {
	return fmt.Sprintf("position (%.2f, %.2f, %.2f) target (%.2f, %.2f, %.2f)",
		c.Position.X, c.Position.Y, c.Position.Z, c.Target.X, c.Target.Y, c.Target.Z)
}

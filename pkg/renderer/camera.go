package renderer

import (
	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"

	"github.com/df07/go-terminal-raytracer/pkg/core"
)

// WorldUp is the up direction used to orient every camera
var WorldUp = core.NewVec3(0, 1, 0)

// Camera generates rays for rendering from a look-from/look-at pose
type Camera struct {
	LookFrom core.Vec3
	LookAt   core.Vec3
}

// NewCamera creates a camera at lookFrom aimed at lookAt
func NewCamera(lookFrom, lookAt core.Vec3) *Camera {
	return &Camera{
		LookFrom: lookFrom,
		LookAt:   lookAt,
	}
}

// Basis returns the camera's orthonormal right, up and forward vectors
func (c *Camera) Basis() (right, up, forward core.Vec3) {
	forward = c.LookAt.Subtract(c.LookFrom).Normalize()
	right = forward.Cross(WorldUp).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// CameraToWorld returns the matrix whose columns are the right, up and forward axes
// followed by the camera origin
func (c *Camera) CameraToWorld() mgl64.Mat4 {
	right, up, forward := c.Basis()
	return mgl64.Mat4FromCols(
		toVec4(right, 0),
		toVec4(up, 0),
		toVec4(forward, 0),
		toVec4(c.LookFrom, 1),
	)
}

// ViewportRay returns the world-space ray through a viewport position. The viewport
// sits one unit in front of the camera, so (0, 0) looks straight at LookAt.
func (c *Camera) ViewportRay(position vec.Vec2) core.Ray {
	transform := c.CameraToWorld()
	local := core.NewVec3(position.X, position.Y, 1).Normalize()

	origin := transform.Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	direction := transform.Mul4x1(toVec4(local, 0))

	return core.NewRay(fromVec4(origin), fromVec4(direction).Normalize())
}

// ViewportPosition maps pixel (i, j) of a width x height grid to viewport space:
// [-1, 1] on both axes with +Y up, with X stretched by the pixel aspect ratio
func ViewportPosition(i, j, width, height int, aspect float64) vec.Vec2 {
	position := vec.Vec2{
		X: 2*float64(i)/float64(width) - 1,
		Y: 2*float64(j)/float64(height) - 1,
	}
	position.Y = -position.Y
	position.X *= aspect
	return position
}

func toVec4(v core.Vec3, w float64) mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, w}
}

func fromVec4(v mgl64.Vec4) core.Vec3 {
	xyz := v.Vec3()
	return core.NewVec3(xyz[0], xyz[1], xyz[2])
}

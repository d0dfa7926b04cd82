package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera looking down -Z from Position
type Camera struct {
	FOV         float32 // vertical, degrees
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
	Position    mgl32.Vec3
}

// NewCamera creates a camera at the origin
func NewCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{
		FOV:         fov,
		AspectRatio: aspect,
		NearPlane:   near,
		FarPlane:    far,
	}
}

// Projection returns the perspective matrix. The aspect ratio is whatever the
// camera was built with; surface size changes do not touch it.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// View moves the world so that Position sits at the origin, looking down -Z
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
}

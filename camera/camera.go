// Package camera provides the look-at/perspective camera the drawing
// backends use to place primitives on screen.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera orbiting a target point.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fov      float32 // vertical field of view, radians
	Aspect   float32
	Near     float32
	Far      float32
}

// New returns a camera looking at the origin from (5,5,5).
func New() *Camera {
	return &Camera{
		Position: mgl32.Vec3{5, 5, 5},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Fov:      mgl32.DegToRad(60),
		Aspect:   1,
		Near:     0.1,
		Far:      1000,
	}
}

// ViewMatrix returns the world-to-eye transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the eye-to-clip transform.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns the combined world-to-clip transform.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// ProjectToScreen maps a world position to pixel coordinates on a
// width×height viewport. ok is false when the point is behind the
// camera; depth increases away from the eye and can be used for
// painter's-order sorting.
func (c *Camera) ProjectToScreen(p mgl32.Vec3, width, height float32) (screen mgl32.Vec2, depth float32, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	screen = mgl32.Vec2{
		(ndcX*0.5 + 0.5) * width,
		(1 - (ndcY*0.5 + 0.5)) * height,
	}
	return screen, clip.W(), true
}

// Orbit rotates the camera position around the target: yaw about the
// world up axis, pitch about the camera's right axis. Angles in radians.
func (c *Camera) Orbit(yaw, pitch float32) {
	offset := c.Position.Sub(c.Target)
	offset = mgl32.QuatRotate(-yaw, mgl32.Vec3{0, 1, 0}).Rotate(offset)

	forward := offset.Mul(-1).Normalize()
	right := forward.Cross(c.Up)
	if right.Len() > 1e-6 {
		right = right.Normalize()
		offset = mgl32.QuatRotate(-pitch, right).Rotate(offset)
	}
	c.Position = c.Target.Add(offset)
}

// Zoom moves the camera along its view direction by delta, clamped so it
// never crosses the target.
func (c *Camera) Zoom(delta float32) {
	offset := c.Position.Sub(c.Target)
	dist := offset.Len()
	newDist := mgl32.Clamp(dist-delta, c.Near*2, c.Far*0.9)
	c.Position = c.Target.Add(offset.Mul(newDist / dist))
}

// Frame places the camera so the box [bmin,bmax] fits in view.
func (c *Camera) Frame(bmin, bmax mgl32.Vec3) {
	center := bmin.Add(bmax).Mul(0.5)
	radius := bmax.Sub(bmin).Len() * 0.5
	if radius < 1e-3 {
		radius = 1
	}
	c.Target = center
	dir := c.Position.Sub(c.Target)
	if dir.Len() < 1e-6 {
		dir = mgl32.Vec3{1, 1, 1}
	}
	c.Position = center.Add(dir.Normalize().Mul(radius * 2.5))
}

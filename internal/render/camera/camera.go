// Package camera provides the orbit camera used by the mesh viewer.
package camera

import (
	"math"

	"github.com/Faultbox/stlkit/pkg/geom"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center geom.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// New creates an orbit camera with mesh-viewing defaults: a slight
// downward, slightly sideways starting angle and a full vertical range so
// the underside of a part stays reachable.
func New() *OrbitCamera {
	return &OrbitCamera{
		Distance:        100.0,
		RotationX:       0.3,
		RotationY:       0.5,
		MinDistance:     0.1,
		MaxDistance:     10000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() geom.Vec3 {
	cosX := float32(math.Cos(float64(c.RotationX)))
	sinX := float32(math.Sin(float64(c.RotationX)))
	cosY := float32(math.Cos(float64(c.RotationY)))
	sinY := float32(math.Sin(float64(c.RotationY)))

	return geom.Vec3{
		X: c.Center.X + c.Distance*cosX*sinY,
		Y: c.Center.Y + c.Distance*sinX,
		Z: c.Center.Z + c.Distance*cosX*cosY,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() geom.Mat4 {
	up := geom.Vec3{Y: 1}
	return geom.LookAt(c.Position(), c.Center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY += deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta. Zoom is
// proportional to distance so small parts and large parts feel alike.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FitBounds centers the camera on the given bounding box and backs off
// far enough to see all of it, resetting the viewing angle.
func (c *OrbitCamera) FitBounds(min, max geom.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	size := max.Sub(min)
	maxSize := size.X
	if size.Y > maxSize {
		maxSize = size.Y
	}
	if size.Z > maxSize {
		maxSize = size.Z
	}

	c.Distance = maxSize * 2.0
	if c.Distance < 10 {
		c.Distance = 10
	}

	c.RotationX = 0.3
	c.RotationY = 0.5
}

package main

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/trophy/pkg/math3d"
)

// axis tracks one rotation angle (degrees) plus a velocity that a harmonica
// spring decays smoothly toward zero every frame, so a mouse drag or key
// tap leaves the model spinning and gliding to a stop instead of snapping
// to rest the instant input stops.
type axis struct {
	Angle    float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newAxis(fps int) axis {
	return axis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *axis) update() {
	a.Angle += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// orbitCamera is a turntable view: the model spins about its own origin on
// pitch/yaw/roll and sits some distance back along Z, composed into a
// single effects matrix each frame.
type orbitCamera struct {
	Pitch, Yaw, Roll axis
	Distance         float64
}

func newOrbitCamera(fps int, distance float64) *orbitCamera {
	return &orbitCamera{
		Pitch:    newAxis(fps),
		Yaw:      newAxis(fps),
		Roll:     newAxis(fps),
		Distance: distance,
	}
}

func (c *orbitCamera) applyImpulse(pitch, yaw, roll float64) {
	c.Pitch.Velocity += pitch
	c.Yaw.Velocity += yaw
	c.Roll.Velocity += roll
}

func (c *orbitCamera) update() {
	c.Pitch.update()
	c.Yaw.update()
	c.Roll.update()
}

func (c *orbitCamera) reset() {
	c.Pitch = axis{spring: c.Pitch.spring}
	c.Yaw = axis{spring: c.Yaw.spring}
	c.Roll = axis{spring: c.Roll.spring}
}

// Matrix builds this frame's effects matrix: rotate about the model's own
// origin, then push it back to Distance along Z so it's in front of the eye.
// The push-back composes through a separate translation matrix so it stays
// in the world frame instead of riding along the rotated axes.
func (c *orbitCamera) Matrix() math3d.Matrix {
	m := math3d.Identity()
	m.RotateX(c.Pitch.Angle)
	m.RotateY(c.Yaw.Angle)
	m.RotateZ(c.Roll.Angle)

	move := math3d.Identity()
	move.Translate(0, 0, c.Distance)
	m.Multiply(move)

	return m
}

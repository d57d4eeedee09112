// Package spring implements the one-dimensional damped spring used to settle
// the bubble onto its rest position.
package spring

import "math"

// Spring constants shared by every axis. Mass is 1.
const (
	Stiffness = 500.0
	Damping   = 35.0
	TimeStep  = 1.0 / 60
)

// Convergence tolerances used by Settled.
const (
	VelocityEpsilon = 0.02
	PositionEpsilon = 0.5
)

// Channel is the state of a single axis.
type Channel struct {
	Position float64
	Velocity float64
}

// Reset places the channel at pos with zero velocity.
func (c *Channel) Reset(pos float64) {
	c.Position = pos
	c.Velocity = 0
}

// Step advances the channel one TimeStep toward target using semi-implicit
// Euler: velocity integrates first, then position uses the new velocity.
func (c *Channel) Step(target float64) {
	a := -Stiffness*(c.Position-target) - Damping*c.Velocity
	c.Velocity += a * TimeStep
	c.Position += c.Velocity * TimeStep
}

// Settled reports whether the channel is at rest on target.
func (c Channel) Settled(target float64) bool {
	return math.Abs(c.Velocity) < VelocityEpsilon && math.Abs(c.Position-target) < PositionEpsilon
}

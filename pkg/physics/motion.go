// pkg/physics/motion.go
package physics

// MotionState tracks the kinematic state shared by the carrier and its
// aircraft: a position, a heading used as the direction of travel, and a
// scalar linear speed along that heading.
type MotionState struct {
	Position    Vector2D
	Heading     float64 // radians
	LinearSpeed float64
}

// Advance integrates the position along the current heading for one frame.
func (m *MotionState) Advance(deltaTime float64) {
	m.Position = m.Position.Add(FromAngle(m.Heading, m.LinearSpeed).Scale(deltaTime))
}

// AdvanceAt integrates the position along the current heading at an explicit
// speed, leaving LinearSpeed untouched. Used during takeoff, where the deck
// speed of the carrier is added on top of the aircraft's own speed.
func (m *MotionState) AdvanceAt(speed, deltaTime float64) {
	m.Position = m.Position.Add(FromAngle(m.Heading, speed).Scale(deltaTime))
}

// RampSpeed accelerates the linear speed toward maxSpeed at a constant rate.
func (m *MotionState) RampSpeed(acceleration, maxSpeed, deltaTime float64) {
	newSpeed := m.LinearSpeed + acceleration*deltaTime
	if newSpeed <= maxSpeed {
		m.LinearSpeed = newSpeed
	} else {
		m.LinearSpeed = maxSpeed
	}
}

// TurnToward points the heading directly at the target position.
func (m *MotionState) TurnToward(target Vector2D) {
	m.Heading = target.Sub(m.Position).Angle()
}

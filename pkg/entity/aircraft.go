// pkg/entity/aircraft.go
package entity

import (
	"math"

	"github.com/opd-ai/go-carrier/pkg/event"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// AircraftState identifies the current phase of an aircraft's flight cycle
type AircraftState int

const (
	StateIdle AircraftState = iota
	StateTakeoff
	StateFly
	StateHover
	StateLand
	StateRefuel
)

// String returns a human-readable name for the state.
func (s AircraftState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTakeoff:
		return "takeoff"
	case StateFly:
		return "fly"
	case StateHover:
		return "hover"
	case StateLand:
		return "land"
	case StateRefuel:
		return "refuel"
	default:
		return "unknown"
	}
}

// AircraftParams contains the tunable flight characteristics of an aircraft
type AircraftParams struct {
	MaxSpeed          float64
	Acceleration      float64
	HoverAngularSpeed float64
	TakeoffDuration   float64
	FlightDuration    float64
	RefuelDuration    float64
	HoverRadius       float64
	LandingRadius     float64
}

// DefaultAircraftParams returns the stock flight characteristics
func DefaultAircraftParams() AircraftParams {
	return AircraftParams{
		MaxSpeed:          2.0,
		Acceleration:      1.0,
		HoverAngularSpeed: 2.5,
		TakeoffDuration:   2.0,
		FlightDuration:    10.0,
		RefuelDuration:    3.0,
		HoverRadius:       1.0,
		LandingRadius:     0.1,
	}
}

// hoverTolerance absorbs floating-point drift when checking whether a
// hovering aircraft is still on its holding circle.
const hoverTolerance = 0.000001

// Aircraft is a single carrier-based plane driven by a six-state flight
// cycle: idle on deck, takeoff along the carrier's heading, fly to the
// commanded target, hover in a holding circle, land back on the carrier,
// and refuel before becoming idle again.
type Aircraft struct {
	id     int
	mesh   Mesh
	motion physics.MotionState
	params AircraftParams

	// flightTime is the time since the aircraft last left idle; landingTime
	// is only meaningful from touchdown until refueling completes.
	flightTime  float64
	landingTime float64

	targetPosition physics.Vector2D
	hoverAngle     float64

	carrier *Carrier
	scene   Scene
	bus     *event.Bus
	state   AircraftState
}

// Init prepares the aircraft for use. The carrier reference is non-owning;
// the simulation root owns both sides of the relationship.
func (a *Aircraft) Init(id int, owner *Carrier, scene Scene, bus *event.Bus, params AircraftParams) {
	a.id = id
	a.mesh = nil
	a.motion = physics.MotionState{}
	a.params = params

	a.flightTime = 0
	a.landingTime = 0

	a.targetPosition = physics.Vector2D{}
	a.hoverAngle = 0

	a.carrier = owner
	a.scene = scene
	a.bus = bus
	a.state = StateIdle
}

// Deinit releases the aircraft's visual representation if it has one.
// Idle and refueling aircraft hold no handle.
func (a *Aircraft) Deinit() {
	if a.mesh != nil {
		a.scene.DestroyMesh(a.mesh)
		a.mesh = nil
	}
}

// Update advances the flight state machine by one frame. The state-specific
// motion runs first; the shared speed-ramp and timing bookkeeping follows,
// so a transition taken this frame still uses the pre-transition motion
// while the ramped speed feeds the next frame.
func (a *Aircraft) Update(deltaTime float64) {
	switch a.state {
	case StateTakeoff:
		a.takeoff(deltaTime)
	case StateFly:
		a.fly(deltaTime)
	case StateHover:
		a.hover(deltaTime)
	case StateLand:
		a.land(deltaTime)
	case StateRefuel:
		a.refuel(deltaTime)
	}

	a.simulateFlight(deltaTime)
}

// SetTarget overwrites the commanded target position. Safe in any state;
// it affects subsequent fly and hover behavior immediately.
func (a *Aircraft) SetTarget(position physics.Vector2D) {
	a.targetPosition = position
}

// ReadyToFly reports whether the aircraft is idle on deck.
func (a *Aircraft) ReadyToFly() bool {
	return a.state == StateIdle
}

// InFlight reports whether the aircraft is airborne (neither idle nor
// refueling).
func (a *Aircraft) InFlight() bool {
	return a.state != StateIdle && a.state != StateRefuel
}

// Launch creates the visual representation, snaps the aircraft to the
// carrier's deck, and begins takeoff. Callers must check ReadyToFly first;
// launching a non-idle aircraft is a caller bug.
func (a *Aircraft) Launch() {
	a.mesh = a.scene.CreateAircraftMesh()
	a.motion.Position = a.carrier.Position()
	a.motion.Heading = a.carrier.Heading()
	a.scene.PlaceMesh(a.mesh, a.motion.Position, a.motion.Heading)

	a.state = StateTakeoff
	a.bus.Publish(event.NewAircraftEvent(event.AircraftLaunched, a, a.id, a.state.String()))
}

// takeoff rides the deck: heading is forced to the carrier's heading and the
// carrier's linear speed is added on top of the aircraft's own.
func (a *Aircraft) takeoff(deltaTime float64) {
	if a.flightTime >= a.params.TakeoffDuration {
		a.state = StateFly
	}

	a.motion.Heading = a.carrier.Heading()
	a.motion.AdvanceAt(a.motion.LinearSpeed+a.carrier.LinearSpeed(), deltaTime)
}

// fly steers directly at the target until it comes within hover radius.
func (a *Aircraft) fly(deltaTime float64) {
	if a.targetPosition.Distance(a.motion.Position) <= a.params.HoverRadius {
		a.state = StateHover
		a.hoverAngle = a.motion.Heading + math.Pi
		return
	}

	a.motion.TurnToward(a.targetPosition)
	a.motion.Advance(deltaTime)
}

// hover orbits the target on a fixed-radius circle. A target change that
// moves the circle away by more than the tolerance drops back to fly; once
// the flight duration is spent the aircraft turns for home.
func (a *Aircraft) hover(deltaTime float64) {
	if a.targetPosition.Distance(a.motion.Position) > a.params.HoverRadius+hoverTolerance {
		a.state = StateFly
		return
	}

	if a.flightTime >= a.params.FlightDuration {
		a.state = StateLand
	}

	a.motion.Heading = a.hoverAngle + math.Pi/2
	a.hoverAngle += a.params.HoverAngularSpeed * deltaTime
	a.motion.Position = a.targetPosition.Add(physics.FromAngle(a.hoverAngle, a.params.HoverRadius))
}

// land steers at the carrier's current position; on touchdown the visual
// representation is released and refueling begins.
func (a *Aircraft) land(deltaTime float64) {
	deck := a.carrier.Position()
	if deck.Distance(a.motion.Position) <= a.params.LandingRadius {
		a.state = StateRefuel
		a.landingTime = a.flightTime
		a.scene.DestroyMesh(a.mesh)
		a.mesh = nil
		a.bus.Publish(event.NewAircraftEvent(event.AircraftLanded, a, a.id, a.state.String()))
	}

	a.motion.TurnToward(deck)
	a.motion.Advance(deltaTime)
}

// refuel accumulates time on deck until the refuel duration beyond the
// recorded touchdown time has passed, then resets for the next sortie.
func (a *Aircraft) refuel(deltaTime float64) {
	a.landingTime += deltaTime
	if a.landingTime > a.flightTime+a.params.RefuelDuration {
		a.state = StateIdle
		a.motion.LinearSpeed = 0
		a.flightTime = 0
		a.landingTime = 0
		a.bus.Publish(event.NewAircraftEvent(event.AircraftReady, a, a.id, a.state.String()))
	}
}

// simulateFlight applies the cross-cutting per-frame rules while airborne:
// ramp linear speed toward the maximum, accumulate flight time, and move the
// visual representation to the just-computed pose.
func (a *Aircraft) simulateFlight(deltaTime float64) {
	if !a.InFlight() {
		return
	}

	a.motion.RampSpeed(a.params.Acceleration, a.params.MaxSpeed, deltaTime)
	a.flightTime += deltaTime

	a.scene.PlaceMesh(a.mesh, a.motion.Position, a.motion.Heading)
}

// ID returns the aircraft's roster index.
func (a *Aircraft) ID() int {
	return a.id
}

// State returns the current flight state.
func (a *Aircraft) State() AircraftState {
	return a.state
}

// Position returns the aircraft's world position.
func (a *Aircraft) Position() physics.Vector2D {
	return a.motion.Position
}

// Heading returns the aircraft's heading in radians.
func (a *Aircraft) Heading() float64 {
	return a.motion.Heading
}

// LinearSpeed returns the aircraft's current linear speed.
func (a *Aircraft) LinearSpeed() float64 {
	return a.motion.LinearSpeed
}

// Target returns the last commanded target position.
func (a *Aircraft) Target() physics.Vector2D {
	return a.targetPosition
}

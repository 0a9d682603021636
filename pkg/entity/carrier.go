// pkg/entity/carrier.go
package entity

import (
	"fmt"

	"github.com/opd-ai/go-carrier/pkg/event"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// ShipParams contains the tunable motion characteristics of the carrier
type ShipParams struct {
	LinearSpeed  float64
	AngularSpeed float64
}

// DefaultShipParams returns the stock carrier characteristics
func DefaultShipParams() ShipParams {
	return ShipParams{
		LinearSpeed:  0.5,
		AngularSpeed: 0.5,
	}
}

// Carrier is the player-controlled ship. It owns its input flags and
// kinematic state and holds a non-owning reference to the aircraft roster
// for broadcasting target and launch commands.
type Carrier struct {
	mesh   Mesh
	motion physics.MotionState
	params ShipParams

	input [KeyCount]bool

	planes []*Aircraft
	scene  Scene
	bus    *event.Bus
}

// Init creates the carrier's visual representation and wires the roster
// reference. Calling Init on an already-initialized carrier is a caller bug.
func (c *Carrier) Init(scene Scene, bus *event.Bus, params ShipParams, planes []*Aircraft) {
	if c.mesh != nil {
		panic("carrier: Init called twice")
	}

	c.scene = scene
	c.bus = bus
	c.params = params
	c.mesh = scene.CreateShipMesh()
	c.motion = physics.MotionState{}
	for i := range c.input {
		c.input[i] = false
	}

	c.planes = planes
}

// Deinit releases the carrier's visual representation.
func (c *Carrier) Deinit() {
	if c.mesh == nil {
		panic("carrier: Deinit called twice")
	}
	c.scene.DestroyMesh(c.mesh)
	c.mesh = nil
}

// Update recomputes velocity from the held input flags and integrates
// motion for one frame. Forward takes precedence over backward, left over
// right, and turning is only applied while the carrier is moving.
func (c *Carrier) Update(deltaTime float64) {
	c.motion.LinearSpeed = 0
	angularSpeed := 0.0

	if c.input[KeyForward] {
		c.motion.LinearSpeed = c.params.LinearSpeed
	} else if c.input[KeyBackward] {
		c.motion.LinearSpeed = -c.params.LinearSpeed
	}

	if c.input[KeyLeft] && c.motion.LinearSpeed != 0 {
		angularSpeed = c.params.AngularSpeed
	} else if c.input[KeyRight] && c.motion.LinearSpeed != 0 {
		angularSpeed = -c.params.AngularSpeed
	}

	c.motion.Heading += angularSpeed * deltaTime
	c.motion.Advance(deltaTime)
	c.scene.PlaceMesh(c.mesh, c.motion.Position, c.motion.Heading)
}

// KeyPressed sets the input flag for the given key.
func (c *Carrier) KeyPressed(key Key) {
	if !key.Valid() {
		panic(fmt.Sprintf("carrier: invalid input key %d", key))
	}
	c.input[key] = true
}

// KeyReleased clears the input flag for the given key.
func (c *Carrier) KeyReleased(key Key) {
	if !key.Valid() {
		panic(fmt.Sprintf("carrier: invalid input key %d", key))
	}
	c.input[key] = false
}

// MouseClicked dispatches a pointer event in world coordinates. A left
// click places the goal marker and retargets every aircraft in the roster;
// a right click launches the first idle aircraft, if any.
func (c *Carrier) MouseClicked(worldPosition physics.Vector2D, isLeftButton bool) {
	if isLeftButton {
		c.scene.PlaceGoalMarker(worldPosition)
		for _, plane := range c.planes {
			plane.SetTarget(worldPosition)
		}
		c.bus.Publish(event.NewTargetEvent(c, worldPosition.X, worldPosition.Y))
	} else {
		for _, plane := range c.planes {
			if plane.ReadyToFly() {
				plane.Launch()
				break
			}
		}
	}
}

// Position returns the carrier's world position.
func (c *Carrier) Position() physics.Vector2D {
	return c.motion.Position
}

// Heading returns the carrier's heading in radians.
func (c *Carrier) Heading() float64 {
	return c.motion.Heading
}

// LinearSpeed returns the carrier's current linear speed.
func (c *Carrier) LinearSpeed() float64 {
	return c.motion.LinearSpeed
}

// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-carrier/pkg/engine"
	"github.com/opd-ai/go-carrier/pkg/entity"
)

// InputSystem polls Engo's input state each frame and translates it into
// the simulation's key and pointer events. Key events are edge-triggered:
// the simulation is told about presses and releases, not held state.
type InputSystem struct {
	sim *engine.Simulation

	prev [entity.KeyCount]bool
}

// NewInputSystem creates a new input system driving the given simulation.
func NewInputSystem(sim *engine.Simulation) *InputSystem {
	return &InputSystem{
		sim: sim,
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update processes input and forwards events to the simulation
func (is *InputSystem) Update(dt float32) {
	is.syncKey(entity.KeyForward, "forward")
	is.syncKey(entity.KeyBackward, "backward")
	is.syncKey(entity.KeyLeft, "left")
	is.syncKey(entity.KeyRight, "right")

	is.handleMouse()
}

// syncKey forwards press/release edges for one key binding.
func (is *InputSystem) syncKey(key entity.Key, button string) {
	down := engo.Input.Button(button).Down()
	if down && !is.prev[key] {
		is.sim.KeyPressed(key)
	} else if !down && is.prev[key] {
		is.sim.KeyReleased(key)
	}
	is.prev[key] = down
}

// handleMouse forwards click events with the screen coordinates Engo
// reports; the simulation converts them to world space.
func (is *InputSystem) handleMouse() {
	mouse := engo.Input.Mouse
	if mouse.Action != engo.Press {
		return
	}

	switch mouse.Button {
	case engo.MouseButtonLeft:
		is.sim.MouseClicked(float64(mouse.X), float64(mouse.Y), true)
	case engo.MouseButtonRight:
		is.sim.MouseClicked(float64(mouse.X), float64(mouse.Y), false)
	}
}

// SetupInputBindings registers the keyboard bindings used by the carrier.
func SetupInputBindings() {
	engo.Input.RegisterButton("forward", engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton("backward", engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton("left", engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton("right", engo.KeyD, engo.KeyArrowRight)
}

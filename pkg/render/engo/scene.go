// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/engine"
)

// CarrierScene is the Engo scene hosting the carrier simulation. The
// simulation is constructed by the caller with the EngoScene backend and
// initialized here, once the ECS world exists.
type CarrierScene struct {
	Sim      *engine.Simulation
	Renderer *EngoScene
}

// Type returns the scene type (required by Engo)
func (scene *CarrierScene) Type() string {
	return "CarrierScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *CarrierScene) Preload() {
	// Sprites are generated, nothing to load from disk
}

// Setup is called when the scene starts (required by Engo)
func (scene *CarrierScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)
	world.AddSystem(&common.MouseSystem{})

	if err := scene.Renderer.Initialize(world, renderSystem); err != nil {
		panic("failed to initialize renderer: " + err.Error())
	}

	SetupInputBindings()

	scene.Sim.Init()

	world.AddSystem(&simulationSystem{sim: scene.Sim})
	world.AddSystem(NewInputSystem(scene.Sim))
}

// simulationSystem advances the simulation with the frame delta.
type simulationSystem struct {
	sim *engine.Simulation
}

// Remove satisfies the ecs.System interface
func (ss *simulationSystem) Remove(basic ecs.BasicEntity) {
	// Not used for simulation system
}

// Update advances the simulation by the frame delta
func (ss *simulationSystem) Update(dt float32) {
	ss.sim.Update(float64(dt))
}

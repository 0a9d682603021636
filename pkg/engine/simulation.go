// pkg/engine/simulation.go
package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/event"
	"github.com/opd-ai/go-carrier/pkg/logging"
	"github.com/opd-ai/go-carrier/pkg/physics"
	"github.com/opd-ai/go-carrier/pkg/validation"
)

// Simulation is the root of the carrier simulation. It exclusively owns the
// carrier and the fixed aircraft roster, wires the non-owning references
// between them, and drives the per-frame update and input dispatch. The
// update order within a frame — carrier first, then aircraft in roster
// order — is an observable guarantee: aircraft reacting to the carrier's
// position during takeoff or landing always see its post-update state.
type Simulation struct {
	Config   *config.SimConfig
	Carrier  *entity.Carrier
	Roster   []*entity.Aircraft
	EventBus *event.Bus
	Scene    entity.Scene

	Running     bool
	CurrentTick uint64

	initialized bool
	logger      *logging.Logger
}

// NewSimulation creates a new simulation with the specified configuration
// and rendering backend. Call Init before the first Update.
func NewSimulation(cfg *config.SimConfig, scene entity.Scene) *Simulation {
	sim := &Simulation{
		Config:   cfg,
		Carrier:  &entity.Carrier{},
		Roster:   make([]*entity.Aircraft, cfg.RosterSize),
		EventBus: event.NewEventBus(),
		Scene:    scene,
		logger:   logging.NewLogger(),
	}
	for i := range sim.Roster {
		sim.Roster[i] = &entity.Aircraft{}
	}

	sim.registerEventHandlers()

	return sim
}

// Init constructs the carrier (creating its visual representation) and
// initializes every aircraft with a back-reference to the carrier. Calling
// Init twice is a caller bug.
func (s *Simulation) Init() {
	if s.initialized {
		panic("simulation: Init called twice")
	}

	s.Carrier.Init(s.Scene, s.EventBus, s.Config.ShipConfig.ShipParams(), s.Roster)
	for i, plane := range s.Roster {
		plane.Init(i, s.Carrier, s.Scene, s.EventBus, s.Config.AircraftConfig.AircraftParams())
	}

	s.initialized = true
	s.Running = true
	s.EventBus.Publish(&event.BaseEvent{
		EventType: event.SimulationStarted,
		Source:    s,
	})
}

// Deinit tears down the carrier's visual representation, then that of any
// aircraft currently in flight. Idle and refueling aircraft have none to
// release.
func (s *Simulation) Deinit() {
	if !s.initialized {
		panic("simulation: Deinit without Init")
	}

	s.Carrier.Deinit()
	for _, plane := range s.Roster {
		if plane.InFlight() {
			plane.Deinit()
		}
	}

	s.initialized = false
	s.Running = false
	s.EventBus.Publish(&event.BaseEvent{
		EventType: event.SimulationStopped,
		Source:    s,
	})
}

// Update advances the simulation by deltaTime time units: the carrier
// first, then every aircraft in roster order.
func (s *Simulation) Update(deltaTime float64) {
	if err := validation.ValidateDeltaTime(deltaTime); err != nil {
		panic("simulation: " + err.Error())
	}

	s.Carrier.Update(deltaTime)
	for _, plane := range s.Roster {
		plane.Update(deltaTime)
	}
	s.CurrentTick++
}

// KeyPressed forwards a key-down event to the carrier.
func (s *Simulation) KeyPressed(key entity.Key) {
	if err := validation.ValidateKey(key); err != nil {
		panic("simulation: " + err.Error())
	}
	s.Carrier.KeyPressed(key)
}

// KeyReleased forwards a key-up event to the carrier.
func (s *Simulation) KeyReleased(key entity.Key) {
	if err := validation.ValidateKey(key); err != nil {
		panic("simulation: " + err.Error())
	}
	s.Carrier.KeyReleased(key)
}

// MouseClicked converts a screen-space click to world coordinates and
// forwards it to the carrier.
func (s *Simulation) MouseClicked(screenX, screenY float64, isLeftButton bool) {
	if err := validation.ValidatePointer(screenX, screenY); err != nil {
		panic("simulation: " + err.Error())
	}

	worldPosition := s.Scene.ScreenToWorld(physics.Vector2D{X: screenX, Y: screenY})
	s.Carrier.MouseClicked(worldPosition, isLeftButton)
}

// Run drives the simulation at the configured tick rate until the context
// is canceled. Frame callbacks run between updates, which lets backends
// present the frame without owning the loop.
func (s *Simulation) Run(ctx context.Context, onFrame func()) {
	tickInterval := time.Second / time.Duration(s.Config.TickRate)
	deltaTime := tickInterval.Seconds()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Update(deltaTime)
			if onFrame != nil {
				onFrame()
			}
		}
	}
}

// GetState returns a snapshot of the current simulation state.
func (s *Simulation) GetState() *SimulationState {
	state := &SimulationState{
		Tick: s.CurrentTick,
		Carrier: CarrierState{
			Position:    s.Carrier.Position(),
			Heading:     s.Carrier.Heading(),
			LinearSpeed: s.Carrier.LinearSpeed(),
		},
		Aircraft: make([]AircraftState, 0, len(s.Roster)),
	}

	for _, plane := range s.Roster {
		state.Aircraft = append(state.Aircraft, AircraftState{
			ID:          plane.ID(),
			State:       plane.State().String(),
			Position:    plane.Position(),
			Heading:     plane.Heading(),
			LinearSpeed: plane.LinearSpeed(),
			Target:      plane.Target(),
		})
	}

	return state
}

// SimulationState represents a snapshot of the simulation
type SimulationState struct {
	Tick     uint64
	Carrier  CarrierState
	Aircraft []AircraftState
}

// CarrierState represents a snapshot of the carrier's state
type CarrierState struct {
	Position    physics.Vector2D
	Heading     float64
	LinearSpeed float64
}

// AircraftState represents a snapshot of a single aircraft's state
type AircraftState struct {
	ID          int
	State       string
	Position    physics.Vector2D
	Heading     float64
	LinearSpeed float64
	Target      physics.Vector2D
}

// registerEventHandlers registers handlers for simulation events
func (s *Simulation) registerEventHandlers() {
	ctx := context.Background()

	s.EventBus.Subscribe(event.AircraftLaunched, func(e event.Event) {
		if ae, ok := e.(*event.AircraftEvent); ok {
			s.logger.Info(ctx, "Aircraft launched", "aircraft_id", ae.AircraftID)
		}
	})

	s.EventBus.Subscribe(event.AircraftLanded, func(e event.Event) {
		if ae, ok := e.(*event.AircraftEvent); ok {
			s.logger.Info(ctx, "Aircraft landed", "aircraft_id", ae.AircraftID)
		}
	})

	s.EventBus.Subscribe(event.TargetAssigned, func(e event.Event) {
		if te, ok := e.(*event.TargetEvent); ok {
			s.logger.Info(ctx, "Target assigned to roster", "x", te.X, "y", te.Y)
		}
	})
}

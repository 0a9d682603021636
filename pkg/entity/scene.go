// pkg/entity/scene.go
package entity

import (
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// Mesh is an opaque handle to an entity's visual representation. Handles are
// owned exclusively by the entity that created them and must be released
// exactly once; owners nil their handle immediately after release.
type Mesh interface{}

// Scene is the visual-representation service the simulation core consumes.
// Rendering backends implement it; the core never depends on a concrete one.
type Scene interface {
	// CreateShipMesh creates the carrier's visual representation.
	CreateShipMesh() Mesh
	// CreateAircraftMesh creates an aircraft's visual representation.
	CreateAircraftMesh() Mesh
	// DestroyMesh releases a handle previously returned by a Create call.
	DestroyMesh(mesh Mesh)
	// PlaceMesh repositions and reorients a handle in world space.
	PlaceMesh(mesh Mesh, position physics.Vector2D, heading float64)
	// PlaceGoalMarker displays the goal marker at a world position.
	PlaceGoalMarker(position physics.Vector2D)
	// ScreenToWorld converts a screen-space point to world coordinates.
	ScreenToWorld(screen physics.Vector2D) physics.Vector2D
}

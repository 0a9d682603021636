// pkg/render/null.go
package render

import (
	"context"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/logging"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// NullScene is a headless implementation of entity.Scene. It hands out
// distinct opaque handles and logs placement at debug level, which makes it
// useful for tests and headless runs.
type NullScene struct {
	logger *logging.Logger
}

// nullMesh is a distinct allocation per handle so ownership rules
// (release exactly once, nil afterwards) remain observable in tests.
type nullMesh struct {
	kind string
}

// NewNullScene creates a new NullScene with structured logging.
func NewNullScene() *NullScene {
	return &NullScene{
		logger: logging.NewLogger(),
	}
}

// CreateShipMesh implements entity.Scene.
func (s *NullScene) CreateShipMesh() entity.Mesh {
	s.logger.Debug(context.Background(), "CreateShipMesh called")
	return &nullMesh{kind: "ship"}
}

// CreateAircraftMesh implements entity.Scene.
func (s *NullScene) CreateAircraftMesh() entity.Mesh {
	s.logger.Debug(context.Background(), "CreateAircraftMesh called")
	return &nullMesh{kind: "aircraft"}
}

// DestroyMesh implements entity.Scene.
func (s *NullScene) DestroyMesh(mesh entity.Mesh) {
	ctx := context.Background()
	if mesh == nil {
		s.logger.Debug(ctx, "DestroyMesh called with nil mesh")
		return
	}
	s.logger.Debug(ctx, "DestroyMesh called", "kind", mesh.(*nullMesh).kind)
}

// PlaceMesh implements entity.Scene.
func (s *NullScene) PlaceMesh(mesh entity.Mesh, position physics.Vector2D, heading float64) {
	ctx := context.Background()
	if mesh == nil {
		s.logger.Debug(ctx, "PlaceMesh called with nil mesh")
		return
	}
	s.logger.Debug(ctx, "PlaceMesh called",
		"kind", mesh.(*nullMesh).kind,
		"x", position.X,
		"y", position.Y,
		"heading", heading,
	)
}

// PlaceGoalMarker implements entity.Scene.
func (s *NullScene) PlaceGoalMarker(position physics.Vector2D) {
	s.logger.Debug(context.Background(), "PlaceGoalMarker called",
		"x", position.X,
		"y", position.Y,
	)
}

// ScreenToWorld implements entity.Scene. The null scene has no viewport, so
// screen space and world space coincide.
func (s *NullScene) ScreenToWorld(screen physics.Vector2D) physics.Vector2D {
	return screen
}

// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// EngoScene implements entity.Scene using the Engo game engine. Mesh
// handles own their ECS components; the render system holds pointers into
// them, so placement updates are visible without re-adding.
type EngoScene struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	assets       *AssetManager

	// scale is world units per screen pixel
	scale float64

	marker *engoMesh
}

// engoMesh is the handle type for the engo backend.
type engoMesh struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// NewEngoScene creates a new Engo-based scene backend.
func NewEngoScene(scale float64) *EngoScene {
	return &EngoScene{
		assets: NewAssetManager(),
		scale:  scale,
	}
}

// Initialize binds the scene to an ECS world and render system and
// generates the sprite assets. Must be called from the engo scene's Setup
// before the simulation creates any meshes.
func (s *EngoScene) Initialize(world *ecs.World, renderSystem *common.RenderSystem) error {
	s.world = world
	s.renderSystem = renderSystem
	return s.assets.LoadAssets()
}

// CreateShipMesh implements entity.Scene.
func (s *EngoScene) CreateShipMesh() entity.Mesh {
	return s.createMesh(s.assets.GetCarrierSprite(), 32, color.RGBA{180, 180, 190, 255})
}

// CreateAircraftMesh implements entity.Scene.
func (s *EngoScene) CreateAircraftMesh() entity.Mesh {
	return s.createMesh(s.assets.GetAircraftSprite(), 16, color.RGBA{255, 255, 255, 255})
}

// DestroyMesh implements entity.Scene.
func (s *EngoScene) DestroyMesh(mesh entity.Mesh) {
	if mesh == nil {
		return
	}
	m := mesh.(*engoMesh)
	s.renderSystem.Remove(m.basic)
}

// PlaceMesh implements entity.Scene.
func (s *EngoScene) PlaceMesh(mesh entity.Mesh, position physics.Vector2D, heading float64) {
	if mesh == nil {
		return
	}
	m := mesh.(*engoMesh)
	screen := s.worldToScreen(position)
	m.space.Position = screen
	// SpaceComponent rotation is in degrees
	m.space.Rotation = float32(heading * 180 / math.Pi)
}

// PlaceGoalMarker implements entity.Scene. The marker entity is created on
// first use and moved afterwards.
func (s *EngoScene) PlaceGoalMarker(position physics.Vector2D) {
	if s.marker == nil {
		s.marker = s.createMesh(s.assets.GetMarkerSprite(), 12, color.RGBA{255, 64, 64, 255})
	}
	s.marker.space.Position = s.worldToScreen(position)
}

// ScreenToWorld implements entity.Scene. It inverts worldToScreen.
func (s *EngoScene) ScreenToWorld(screen physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{
		X: (screen.X - float64(engo.GameWidth())/2) * s.scale,
		Y: (screen.Y - float64(engo.GameHeight())/2) * s.scale,
	}
}

// createMesh allocates a handle and registers it with the render system.
func (s *EngoScene) createMesh(drawable common.Drawable, size float32, col color.Color) *engoMesh {
	mesh := &engoMesh{basic: ecs.NewBasic()}
	mesh.render = common.RenderComponent{
		Drawable: drawable,
		Color:    col,
	}
	mesh.space = common.SpaceComponent{
		Position: engo.Point{X: 0, Y: 0},
		Width:    size,
		Height:   size,
	}

	s.renderSystem.Add(&mesh.basic, &mesh.render, &mesh.space)

	return mesh
}

// worldToScreen converts world coordinates to screen coordinates.
func (s *EngoScene) worldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X/s.scale) + engo.GameWidth()/2,
		Y: float32(worldPos.Y/s.scale) + engo.GameHeight()/2,
	}
}

// pkg/render/terminal.go
package render

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/physics"
)

// TerminalScene provides a simple ASCII-based implementation of entity.Scene
// for terminals. The view is centered on centerPos and scaled so that one
// character cell covers `scale` world units.
type TerminalScene struct {
	width     int
	height    int
	scale     float64
	centerPos physics.Vector2D

	meshes    map[*terminalMesh]struct{}
	marker    physics.Vector2D
	markerSet bool
}

// terminalMesh is the handle type for the terminal backend.
type terminalMesh struct {
	glyph   rune
	pos     physics.Vector2D
	heading float64
}

// NewTerminalScene creates a new terminal scene with the specified viewport
// dimensions and world-units-per-cell scale.
func NewTerminalScene(width, height int, scale float64) *TerminalScene {
	return &TerminalScene{
		width:  width,
		height: height,
		scale:  scale,
		meshes: make(map[*terminalMesh]struct{}),
	}
}

// SetCenter sets the world position the viewport is centered on.
func (s *TerminalScene) SetCenter(pos physics.Vector2D) {
	s.centerPos = pos
}

// CreateShipMesh implements entity.Scene.
func (s *TerminalScene) CreateShipMesh() entity.Mesh {
	mesh := &terminalMesh{glyph: 'S'}
	s.meshes[mesh] = struct{}{}
	return mesh
}

// CreateAircraftMesh implements entity.Scene.
func (s *TerminalScene) CreateAircraftMesh() entity.Mesh {
	mesh := &terminalMesh{glyph: 'a'}
	s.meshes[mesh] = struct{}{}
	return mesh
}

// DestroyMesh implements entity.Scene.
func (s *TerminalScene) DestroyMesh(mesh entity.Mesh) {
	if mesh == nil {
		return
	}
	delete(s.meshes, mesh.(*terminalMesh))
}

// PlaceMesh implements entity.Scene.
func (s *TerminalScene) PlaceMesh(mesh entity.Mesh, position physics.Vector2D, heading float64) {
	if mesh == nil {
		return
	}
	m := mesh.(*terminalMesh)
	m.pos = position
	m.heading = heading
}

// PlaceGoalMarker implements entity.Scene.
func (s *TerminalScene) PlaceGoalMarker(position physics.Vector2D) {
	s.marker = position
	s.markerSet = true
}

// ScreenToWorld implements entity.Scene. It inverts the viewport transform
// applied by worldToScreen.
func (s *TerminalScene) ScreenToWorld(screen physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{
		X: (screen.X-float64(s.width)/2)*s.scale + s.centerPos.X,
		Y: (screen.Y-float64(s.height)/2)*s.scale + s.centerPos.Y,
	}
}

// worldToScreen converts world coordinates to buffer coordinates.
func (s *TerminalScene) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-s.centerPos.X)/s.scale + float64(s.width)/2)
	screenY := int((pos.Y-s.centerPos.Y)/s.scale + float64(s.height)/2)
	return screenX, screenY
}

// Present draws the current frame to stdout.
func (s *TerminalScene) Present() {
	buffer := make([][]rune, s.height)
	for i := range buffer {
		buffer[i] = make([]rune, s.width)
		for j := range buffer[i] {
			buffer[i][j] = ' '
		}
	}

	if s.markerSet {
		s.drawGlyph(buffer, s.marker, 'x')
	}
	for mesh := range s.meshes {
		s.drawGlyph(buffer, mesh.pos, mesh.glyph)
	}

	// Clear terminal
	fmt.Print("\033[H\033[2J")

	fmt.Println("+" + strings.Repeat("-", s.width) + "+")
	for y := range buffer {
		fmt.Print("|")
		for x := range buffer[y] {
			fmt.Print(string(buffer[y][x]))
		}
		fmt.Println("|")
	}
	fmt.Println("+" + strings.Repeat("-", s.width) + "+")
}

// drawGlyph writes a glyph into the buffer if the position is on screen.
func (s *TerminalScene) drawGlyph(buffer [][]rune, pos physics.Vector2D, glyph rune) {
	x, y := s.worldToScreen(pos)
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	buffer[y][x] = glyph
}

// pkg/render/null_test.go
package render

import (
	"testing"

	"github.com/opd-ai/go-carrier/pkg/physics"
)

func TestNullScene_ImplementsScene(t *testing.T) {
	scene := NewNullScene()

	ship := scene.CreateShipMesh()
	plane := scene.CreateAircraftMesh()
	if ship == nil || plane == nil {
		t.Fatal("null scene returned nil mesh handles")
	}

	// None of these may panic
	scene.PlaceMesh(ship, physics.Vector2D{X: 1, Y: 2}, 0.5)
	scene.PlaceGoalMarker(physics.Vector2D{X: 3, Y: 4})
	scene.DestroyMesh(plane)
	scene.DestroyMesh(ship)
	scene.DestroyMesh(nil)
}

func TestNullScene_ScreenToWorldIsIdentity(t *testing.T) {
	scene := NewNullScene()

	p := physics.Vector2D{X: -7.5, Y: 12}
	if got := scene.ScreenToWorld(p); got != p {
		t.Errorf("ScreenToWorld(%v) = %v, expected identity", p, got)
	}
}

// Package validation provides input validation for the simulation's host
// surface. Invalid input here is a programming bug in the host, not a
// runtime condition to recover from; callers are expected to fail fast on a
// returned error.
package validation

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-carrier/pkg/entity"
)

// ValidateKey checks that a key is a member of the closed input identifier
// space.
func ValidateKey(key entity.Key) error {
	if !key.Valid() {
		return fmt.Errorf("key %d outside valid range [0, %d)", key, entity.KeyCount)
	}
	return nil
}

// ValidateDeltaTime checks that a frame time step is finite and
// non-negative.
func ValidateDeltaTime(deltaTime float64) error {
	if math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) {
		return fmt.Errorf("delta time must be finite, got %f", deltaTime)
	}
	if deltaTime < 0 {
		return fmt.Errorf("delta time must be non-negative, got %f", deltaTime)
	}
	return nil
}

// ValidatePointer checks that pointer coordinates are finite.
func ValidatePointer(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("pointer x must be finite, got %f", x)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return fmt.Errorf("pointer y must be finite, got %f", y)
	}
	return nil
}

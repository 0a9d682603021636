// pkg/validation/validation_test.go
package validation

import (
	"math"
	"testing"

	"github.com/opd-ai/go-carrier/pkg/entity"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     entity.Key
		wantErr bool
	}{
		{name: "forward", key: entity.KeyForward, wantErr: false},
		{name: "backward", key: entity.KeyBackward, wantErr: false},
		{name: "left", key: entity.KeyLeft, wantErr: false},
		{name: "right", key: entity.KeyRight, wantErr: false},
		{name: "negative", key: entity.Key(-1), wantErr: true},
		{name: "past_end", key: entity.KeyCount, wantErr: true},
		{name: "far_out", key: entity.Key(1000), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%d) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDeltaTime(t *testing.T) {
	tests := []struct {
		name    string
		dt      float64
		wantErr bool
	}{
		{name: "typical_frame", dt: 1.0 / 60.0, wantErr: false},
		{name: "zero", dt: 0, wantErr: false},
		{name: "large", dt: 10, wantErr: false},
		{name: "negative", dt: -0.01, wantErr: true},
		{name: "nan", dt: math.NaN(), wantErr: true},
		{name: "positive_infinity", dt: math.Inf(1), wantErr: true},
		{name: "negative_infinity", dt: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeltaTime(tt.dt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDeltaTime(%v) error = %v, wantErr %v", tt.dt, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePointer(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
	}{
		{name: "origin", x: 0, y: 0, wantErr: false},
		{name: "negative_coordinates", x: -100, y: -50, wantErr: false},
		{name: "nan_x", x: math.NaN(), y: 0, wantErr: true},
		{name: "nan_y", x: 0, y: math.NaN(), wantErr: true},
		{name: "infinite_x", x: math.Inf(1), y: 0, wantErr: true},
		{name: "infinite_y", x: 0, y: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePointer(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePointer(%v, %v) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
			}
		})
	}
}

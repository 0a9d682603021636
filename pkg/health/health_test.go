// pkg/health/health_test.go
package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// stubCheck is a controllable health check for tests.
type stubCheck struct {
	name string
	err  error
}

func (s *stubCheck) Name() string                    { return s.name }
func (s *stubCheck) Check(ctx context.Context) error { return s.err }

func TestHealthChecker_CheckHealth(t *testing.T) {
	tests := []struct {
		name           string
		checks         []HealthCheck
		expectedStatus string
	}{
		{
			name:           "no_checks",
			checks:         nil,
			expectedStatus: "healthy",
		},
		{
			name: "all_healthy",
			checks: []HealthCheck{
				&stubCheck{name: "a"},
				&stubCheck{name: "b"},
			},
			expectedStatus: "healthy",
		},
		{
			name: "one_unhealthy",
			checks: []HealthCheck{
				&stubCheck{name: "a"},
				&stubCheck{name: "b", err: errors.New("broken")},
			},
			expectedStatus: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := NewHealthChecker()
			for _, check := range tt.checks {
				hc.AddCheck(check)
			}

			status := hc.CheckHealth(context.Background())
			if status.Status != tt.expectedStatus {
				t.Errorf("Status = %q, expected %q", status.Status, tt.expectedStatus)
			}
			if len(status.Checks) != len(tt.checks) {
				t.Errorf("check count = %d, expected %d", len(status.Checks), len(tt.checks))
			}
		})
	}
}

func TestHealthChecker_RemoveCheck(t *testing.T) {
	hc := NewHealthChecker()
	hc.AddCheck(&stubCheck{name: "doomed", err: errors.New("broken")})
	hc.RemoveCheck("doomed")

	status := hc.CheckHealth(context.Background())
	if status.Status != "healthy" {
		t.Errorf("Status = %q after removal, expected healthy", status.Status)
	}
}

func TestHealthChecker_LivenessHandler(t *testing.T) {
	hc := NewHealthChecker()
	// Liveness must not depend on check results
	hc.AddCheck(&stubCheck{name: "failing", err: errors.New("broken")})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	hc.LivenessHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["status"] != "alive" {
		t.Errorf("status field = %q, expected alive", body["status"])
	}
}

func TestHealthChecker_ReadinessHandler(t *testing.T) {
	tests := []struct {
		name         string
		check        HealthCheck
		expectedCode int
	}{
		{
			name:         "ready",
			check:        &stubCheck{name: "sim"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "not_ready",
			check:        &stubCheck{name: "sim", err: errors.New("not running")},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := NewHealthChecker()
			hc.AddCheck(tt.check)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rec := httptest.NewRecorder()
			hc.ReadinessHandler(rec, req)

			if rec.Code != tt.expectedCode {
				t.Errorf("status = %d, expected %d", rec.Code, tt.expectedCode)
			}

			var status HealthStatus
			if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
		})
	}
}

func TestSimulationHealthCheck(t *testing.T) {
	running := false
	check := NewSimulationHealthCheck(func() bool { return running })

	if check.Name() != "simulation" {
		t.Errorf("Name() = %q, expected simulation", check.Name())
	}
	if err := check.Check(context.Background()); err == nil {
		t.Error("Check() succeeded with stopped simulation, expected error")
	}

	running = true
	if err := check.Check(context.Background()); err != nil {
		t.Errorf("Check() failed with running simulation: %v", err)
	}
}

func TestRosterHealthCheck(t *testing.T) {
	size := 0
	check := NewRosterHealthCheck(func() int { return size })

	if err := check.Check(context.Background()); err == nil {
		t.Error("Check() succeeded with empty roster, expected error")
	}

	size = 5
	if err := check.Check(context.Background()); err != nil {
		t.Errorf("Check() failed with populated roster: %v", err)
	}
}

func TestMemoryHealthCheck(t *testing.T) {
	usage := int64(100)
	check := NewMemoryHealthCheck(500, func() int64 { return usage })

	if err := check.Check(context.Background()); err != nil {
		t.Errorf("Check() failed below limit: %v", err)
	}

	usage = 501
	if err := check.Check(context.Background()); err == nil {
		t.Error("Check() succeeded above limit, expected error")
	}
}

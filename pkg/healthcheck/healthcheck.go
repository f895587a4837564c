// Package healthcheck provides health and readiness check functionality
package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status represents the health status
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Check represents a single health check result
type Check struct {
	Name        string        `json:"name"`
	Status      Status        `json:"status"`
	Message     string        `json:"message,omitempty"`
	LastChecked time.Time     `json:"last_checked"`
	Duration    time.Duration `json:"duration_ms"`
}

// Response represents the aggregated health check response
type Response struct {
	Status    Status    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Checks    []Check   `json:"checks"`
}

// Checker defines the interface for health checks
type Checker interface {
	Check(ctx context.Context) Check
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) Check

func (f CheckerFunc) Check(ctx context.Context) Check {
	return f(ctx)
}

// HealthCheck manages registered health checks
type HealthCheck struct {
	version  string
	logger   *zap.Logger
	mu       sync.RWMutex
	names    []string
	checkers map[string]Checker
}

// New creates a new health check instance
func New(version string, logger *zap.Logger) *HealthCheck {
	return &HealthCheck{
		version:  version,
		logger:   logger,
		checkers: make(map[string]Checker),
	}
}

// Register registers a health checker under a name. Registration order is
// preserved in responses.
func (h *HealthCheck) Register(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.checkers[name]; !exists {
		h.names = append(h.names, name)
	}
	h.checkers[name] = checker
}

// Check runs all registered checks and aggregates their status
func (h *HealthCheck) Check(ctx context.Context) Response {
	h.mu.RLock()
	names := make([]string, len(h.names))
	copy(names, h.names)
	checkers := make(map[string]Checker, len(h.checkers))
	for name, checker := range h.checkers {
		checkers[name] = checker
	}
	h.mu.RUnlock()

	response := Response{
		Status:    StatusHealthy,
		Version:   h.version,
		Timestamp: time.Now(),
		Checks:    make([]Check, 0, len(names)),
	}

	for _, name := range names {
		check := checkers[name].Check(ctx)
		check.Name = name
		if check.Status != StatusHealthy {
			response.Status = StatusUnhealthy
			h.logger.Warn("health check failed",
				zap.String("check", name),
				zap.String("message", check.Message),
			)
		}
		response.Checks = append(response.Checks, check)
	}

	return response
}

// Handler returns the HTTP handler for health checks. Unhealthy responses
// carry a 503 status.
func (h *HealthCheck) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := h.Check(r.Context())

		statusCode := http.StatusOK
		if response.Status == StatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode health response", zap.Error(err))
		}
	}
}

// NewCheck builds a check result, measuring duration from start
func NewCheck(status Status, message string, start time.Time) Check {
	return Check{
		Status:      status,
		Message:     message,
		LastChecked: time.Now(),
		Duration:    time.Since(start) / time.Millisecond,
	}
}

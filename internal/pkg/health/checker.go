package health

import (
	"context"
	"sort"
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
)

// Pinger is implemented by every dependency client the service can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	checkers map[string]Pinger
}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{checkers: make(map[string]Pinger)}
}

// AddChecker registers a dependency under name
func (h *HealthService) AddChecker(name string, checker Pinger) {
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth pings every registered dependency
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(h.checkers)),
	}

	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checkers[name].Ping(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.ErrorField(err))

			response.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			response.Status = "unhealthy"
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return response
}

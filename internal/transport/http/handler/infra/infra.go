// Package infra serves the endpoints the proxy answers itself: the
// service descriptor, health, usage stats, and the 404 fallthrough.
package infra

import (
	"time"

	"github.com/nilmandal/aiproxy/internal/config"
	"github.com/nilmandal/aiproxy/internal/usage"
)

// Handlers holds the dependencies for infrastructure HTTP handlers.
type Handlers struct {
	Config    *config.Config
	Usage     *usage.Tracker
	StartTime time.Time
}

// New creates a new instance of infrastructure handlers.
func New(cfg *config.Config, tracker *usage.Tracker, startTime time.Time) *Handlers {
	return &Handlers{
		Config:    cfg,
		Usage:     tracker,
		StartTime: startTime,
	}
}

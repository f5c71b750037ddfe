// Package usage keeps process-lifetime request accounting. Nothing here
// is persisted; counters reset when the process restarts.
package usage

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// defaultRecentCap bounds the recent-request ring.
const defaultRecentCap = 100

// Record is one relayed (or locally answered) proxy request.
type Record struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	StatusCode   int       `json:"status_code"`
	PromptTokens int       `json:"prompt_tokens"`
	ErrorMessage string    `json:"error_message,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProviderTotals aggregates counts for a single provider.
type ProviderTotals struct {
	RequestCount int `json:"request_count"`
	ErrorCount   int `json:"error_count"`
	PromptTokens int `json:"prompt_tokens"`
}

// Snapshot is a point-in-time copy of the tracker state.
type Snapshot struct {
	Since     time.Time                 `json:"since"`
	Providers map[string]ProviderTotals `json:"providers"`
	Recent    []Record                  `json:"recent"`
}

// Tracker accumulates usage totals and a bounded ring of recent records.
// Safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	since     time.Time
	totals    map[string]ProviderTotals
	recent    []Record
	recentCap int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		since:     time.Now(),
		totals:    make(map[string]ProviderTotals),
		recentCap: defaultRecentCap,
	}
}

// Observe records one request. The record ID is assigned here.
func (t *Tracker) Observe(rec Record) {
	rec.ID = uuid.New().String()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	totals := t.totals[rec.Provider]
	totals.RequestCount++
	totals.PromptTokens += rec.PromptTokens
	if rec.StatusCode >= 400 {
		totals.ErrorCount++
	}
	t.totals[rec.Provider] = totals

	t.recent = append(t.recent, rec)
	if len(t.recent) > t.recentCap {
		t.recent = t.recent[len(t.recent)-t.recentCap:]
	}
}

// Snapshot returns a copy of the current state, newest record first.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		Since:     t.since,
		Providers: make(map[string]ProviderTotals, len(t.totals)),
		Recent:    make([]Record, 0, len(t.recent)),
	}
	for name, totals := range t.totals {
		snap.Providers[name] = totals
	}
	for i := len(t.recent) - 1; i >= 0; i-- {
		snap.Recent = append(snap.Recent, t.recent[i])
	}
	return snap
}

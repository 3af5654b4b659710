package prefs

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Health status values.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// SlowThreshold is the Keys latency above which a reachable store reports
// degraded.
const SlowThreshold = time.Second

// HealthStatus describes whether a store can currently serve reads.
type HealthStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// IsHealthy returns true if the status is StatusHealthy.
func (h HealthStatus) IsHealthy() bool { return h.Status == StatusHealthy }

// IsDegraded returns true if the status is StatusDegraded.
func (h HealthStatus) IsDegraded() bool { return h.Status == StatusDegraded }

// IsUnhealthy returns true if the status is StatusUnhealthy.
func (h HealthStatus) IsUnhealthy() bool { return h.Status == StatusUnhealthy }

// Check lists the store's keys to verify the backend answers. It reports
// unhealthy when listing fails or the store is closed, and degraded when
// the listing takes longer than SlowThreshold.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	if status := prefs.Check(ctx, store); status.IsUnhealthy() {
//	    log.Printf("preferences unavailable: %s", status.Message)
//	}
func Check(ctx context.Context, s Store) HealthStatus {
	start := time.Now()
	keys, err := s.Keys(ctx)
	elapsed := time.Since(start)

	details := map[string]any{
		"store":      fmt.Sprintf("%T", s),
		"latency_ms": elapsed.Milliseconds(),
	}

	if err != nil {
		details["error"] = err.Error()
		msg := "preference store unreachable"
		if errors.Is(err, ErrStoreClosed) {
			msg = "preference store is closed"
		}
		return HealthStatus{Status: StatusUnhealthy, Message: msg, Details: details}
	}

	details["keys"] = len(keys)
	if elapsed > SlowThreshold {
		return HealthStatus{
			Status:  StatusDegraded,
			Message: fmt.Sprintf("preference store responded in %s", elapsed.Round(time.Millisecond)),
			Details: details,
		}
	}
	return HealthStatus{Status: StatusHealthy, Message: "preference store reachable", Details: details}
}

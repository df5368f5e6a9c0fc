package dto

import "slices"

// Health status values reported by the health endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	HealthFailing  = "failing"
)

// CheckResult is the outcome of one readiness check.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the body of /health/live and /health/ready.
type HealthResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
	Failed []string               `json:"failed,omitempty"`
}

// ToReadinessResponse folds checker results into a HealthResponse. The
// service is ready only when every check returned nil. Failed lists the
// failing checkers by name.
func ToReadinessResponse(results map[string]error) HealthResponse {
	resp := HealthResponse{
		Status: HealthReady,
		Checks: make(map[string]CheckResult, len(results)),
	}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = CheckResult{Status: HealthOK}
			continue
		}
		resp.Checks[name] = CheckResult{Status: HealthFailing, Error: err.Error()}
		resp.Failed = append(resp.Failed, name)
	}
	if len(resp.Failed) > 0 {
		resp.Status = HealthNotReady
		slices.Sort(resp.Failed)
	}
	return resp
}

// Ready reports whether every check passed.
func (r HealthResponse) Ready() bool {
	return r.Status == HealthReady
}

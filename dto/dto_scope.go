package dto

import "boothtrack/internal/scope"

// ScopeResponse is the scope lookup payload consumed by the UI.
// Level is null when the email has no hierarchy rows.
type ScopeResponse struct {
	Level   *string        `json:"level"`
	Allowed []scope.Triple `json:"allowed"`
}

func NewScopeResponse(res scope.Resolution) ScopeResponse {
	out := ScopeResponse{Allowed: res.Allowed}
	if out.Allowed == nil {
		out.Allowed = []scope.Triple{}
	}
	if res.Level != "" {
		lvl := string(res.Level)
		out.Level = &lvl
	}
	return out
}

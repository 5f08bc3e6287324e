package session

import "classy-weather/internal/domain/entity"

// Status is the lifecycle stage of the current query
type Status string

const (
	StatusIdle    Status = "IDLE"
	StatusLoading Status = "LOADING"
	StatusLoaded  Status = "LOADED"
	StatusError   Status = "ERROR"
)

// MinQueryLength is the shortest query that triggers a lookup
const MinQueryLength = 2

// State is a snapshot of the session. Weather is only set when Status is StatusLoaded,
// Error only when Status is StatusError.
type State struct {
	Status  Status          `json:"status"`
	Query   string          `json:"query"`
	Weather *entity.Weather `json:"weather,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Listener receives every state transition in order. It runs synchronously and must not call back into the Session.
type Listener func(State)

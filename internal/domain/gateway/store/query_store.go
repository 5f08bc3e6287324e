package store

import (
	"context"

	"classy-weather/internal/domain/model"
)

// QueryStore persists the last location query under a single fixed key.
// Load returns an empty string when nothing was saved yet.
type QueryStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, query string) error
	Health() model.ComponentHealthStatus
}

func up(details map[string]string) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

func down(err error, details map[string]string) model.ComponentHealthStatus {
	if details == nil {
		details = map[string]string{}
	}
	details["message"] = err.Error()
	return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
}

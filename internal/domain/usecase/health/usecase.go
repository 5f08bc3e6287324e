package health

import "classy-weather/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}

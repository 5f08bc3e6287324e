package health

import (
	"classy-weather/internal/domain/gateway/store"
	"classy-weather/internal/domain/model"
)

type healthUseCase struct {
	queryStore store.QueryStore
}

func NewHealthUseCase(queryStore store.QueryStore) UseCase {
	return &healthUseCase{queryStore: queryStore}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	storeHealth := useCase.queryStore.Health()

	overallStatus := model.StatusUp
	if storeHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Store:  storeHealth,
	}
}

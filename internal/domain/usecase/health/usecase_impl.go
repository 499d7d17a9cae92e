package health

import (
	"context"
	"sync"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
}

func NewHealthUseCase(geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway) UseCase {
	return &healthUseCase{
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
	}
}

// CheckHealth probes both upstream APIs concurrently; the service is UP only when both are.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	var geocodingHealth, forecastHealth model.ComponentHealthStatus

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		geocodingHealth = useCase.geocodingGateway.Health(ctx)
	}()
	go func() {
		defer wg.Done()
		forecastHealth = useCase.forecastGateway.Health(ctx)
	}()
	wg.Wait()

	overallStatus := model.StatusUp
	if geocodingHealth.Status != model.StatusUp || forecastHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Geocoding: geocodingHealth,
		Forecast:  forecastHealth,
	}
}

package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

type stubGateway struct {
	status model.HealthStatus
}

func (s stubGateway) SearchLocations(context.Context, string) (*external.GeocodingResponse, error) {
	return nil, nil
}

func (s stubGateway) GetForecast(context.Context, float64, float64) (*external.ForecastResponse, error) {
	return nil, nil
}

func (s stubGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name      string
		geocoding model.HealthStatus
		forecast  model.HealthStatus
		expected  model.HealthStatus
	}{
		{"both up", model.StatusUp, model.StatusUp, model.StatusUp},
		{"geocoding down", model.StatusDown, model.StatusUp, model.StatusDown},
		{"forecast down", model.StatusUp, model.StatusDown, model.StatusDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewHealthUseCase(stubGateway{tt.geocoding}, stubGateway{tt.forecast})

			response := useCase.CheckHealth(context.Background())

			assert.Equal(t, tt.expected, response.Status)
			assert.Equal(t, tt.geocoding, response.Geocoding.Status)
			assert.Equal(t, tt.forecast, response.Forecast.Status)
		})
	}
}

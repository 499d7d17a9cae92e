package api

import (
	"context"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

// GeocodingGateway resolves free-text place names through the geocoding API
type GeocodingGateway interface {
	// SearchLocations searches for places matching name.
	// Returns every candidate the API sent, in API order; an empty result is a not-found error
	SearchLocations(ctx context.Context, name string) (*external.GeocodingResponse, error)

	// Health probes the geocoding API
	Health(ctx context.Context) model.ComponentHealthStatus
}

// ForecastGateway fetches current conditions and the daily forecast
type ForecastGateway interface {
	// GetForecast gets current conditions and the daily series for a coordinate pair.
	// The response is returned as decoded, without unit conversion
	GetForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error)

	// Health probes the forecast API
	Health(ctx context.Context) model.ComponentHealthStatus
}

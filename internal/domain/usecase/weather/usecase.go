package weather

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

type UseCase interface {
	// GetWeatherByCity resolves the city name, takes the first candidate and fetches its weather
	GetWeatherByCity(ctx context.Context, city string) (*entity.CityWeather, error)

	// GetWeatherByCoordinates fetches weather for a position reported by the caller, skipping resolution
	GetWeatherByCoordinates(ctx context.Context, latitude float64, longitude float64) (*entity.CityWeather, error)

	// SearchLocations returns every geocoding candidate for a query, without selecting one
	SearchLocations(ctx context.Context, query string) ([]entity.ResolvedLocation, *external.GeocodingResponse, error)
}

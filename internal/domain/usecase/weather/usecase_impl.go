package weather

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/metrics"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"
)

const (
	lookupPathCity        = "city"
	lookupPathCoordinates = "coordinates"
	lookupPathSearch      = "search"

	defaultForecastDays = 7
)

type weatherUseCase struct {
	forecastDays     int
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
	metrics          *metrics.Metrics
}

// NewWeatherUseCase wires the gateways. forecastDays is the daily horizon every
// snapshot must cover; metrics may be nil.
func NewWeatherUseCase(forecastDays int, geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway, m *metrics.Metrics) UseCase {
	if forecastDays <= 0 {
		forecastDays = defaultForecastDays
	}
	return &weatherUseCase{
		forecastDays:     forecastDays,
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
		metrics:          m,
	}
}

// GetWeatherByCity resolves the city name, takes the first candidate and fetches its weather.
// Ambiguous names are not disambiguated: the first candidate always wins.
func (uc *weatherUseCase) GetWeatherByCity(ctx context.Context, city string) (result *entity.CityWeather, err error) {
	defer func() { uc.recordLookup(lookupPathCity, err) }()

	city = strings.TrimSpace(city)
	if city == "" {
		return nil, model.NewInvalidInputError(msg.GetMessage("weather.validation.empty-city"))
	}

	locations, err := uc.geocodingGateway.SearchLocations(ctx, city)
	if err != nil {
		log.Warn("Failed to resolve city",
			zap.String("city", city),
			zap.String("kind", string(model.KindOf(err))),
			zap.Error(unwrapCause(err)))
		return nil, err
	}
	if len(locations.Results) == 0 {
		return nil, model.NewNotFoundError(msg.GetMessage("weather.geocoding.not-found"))
	}

	location := toResolvedLocation(locations.Results[0])

	snapshot, err := uc.fetchSnapshot(ctx, location.Latitude, location.Longitude)
	if err != nil {
		log.Warn("Failed to fetch weather for city",
			zap.String("city", city),
			zap.String("location", location.Name),
			zap.Error(unwrapCause(err)))
		return nil, err
	}

	log.Info(msg.GetMessage("weather.search.success", location.Name),
		zap.String("city", city),
		zap.String("country", location.Country),
		zap.Float64("latitude", location.Latitude),
		zap.Float64("longitude", location.Longitude))

	return &entity.CityWeather{Weather: *snapshot, Location: location}, nil
}

// GetWeatherByCoordinates fetches weather for a caller supplied position.
// The location is labelled as the caller's own, with no country.
func (uc *weatherUseCase) GetWeatherByCoordinates(ctx context.Context, latitude float64, longitude float64) (result *entity.CityWeather, err error) {
	defer func() { uc.recordLookup(lookupPathCoordinates, err) }()

	if !validCoordinates(latitude, longitude) {
		return nil, model.NewInvalidInputError(msg.GetMessage("weather.validation.invalid-coordinates"))
	}

	snapshot, err := uc.fetchSnapshot(ctx, latitude, longitude)
	if err != nil {
		log.Warn("Failed to fetch weather for coordinates",
			zap.Float64("latitude", latitude),
			zap.Float64("longitude", longitude),
			zap.Error(unwrapCause(err)))
		return nil, err
	}

	return &entity.CityWeather{
		Weather: *snapshot,
		Location: entity.ResolvedLocation{
			Name:      msg.GetMessage("weather.search.current-location"),
			Latitude:  latitude,
			Longitude: longitude,
		},
	}, nil
}

// SearchLocations returns every geocoding candidate for a query in upstream order
func (uc *weatherUseCase) SearchLocations(ctx context.Context, query string) (locations []entity.ResolvedLocation, response *external.GeocodingResponse, err error) {
	defer func() { uc.recordLookup(lookupPathSearch, err) }()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil, model.NewInvalidInputError(msg.GetMessage("weather.validation.empty-city"))
	}

	response, err = uc.geocodingGateway.SearchLocations(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	locations = make([]entity.ResolvedLocation, 0, len(response.Results))
	for _, result := range response.Results {
		locations = append(locations, toResolvedLocation(result))
	}
	return locations, response, nil
}

// fetchSnapshot fetches the forecast and converts it; the conversion refuses incomplete responses
func (uc *weatherUseCase) fetchSnapshot(ctx context.Context, latitude float64, longitude float64) (*entity.WeatherSnapshot, error) {
	response, err := uc.forecastGateway.GetForecast(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	snapshot, err := toWeatherSnapshot(response, uc.forecastDays)
	if err != nil {
		return nil, model.NewParseError(msg.GetMessage("weather.forecast.parse"), err)
	}
	if !entity.IsKnownWeatherCode(snapshot.Current.WeatherCode) {
		log.Warn("Unknown weather code, rendering as clear sky", zap.Int("weather_code", snapshot.Current.WeatherCode))
	}
	return snapshot, nil
}

func (uc *weatherUseCase) recordLookup(path string, err error) {
	result := "success"
	if err != nil {
		result = string(model.KindOf(err))
		if result == "" {
			result = "unknown"
		}
	}
	uc.metrics.RecordLookup(path, result)
}

func toResolvedLocation(result external.GeocodingResult) entity.ResolvedLocation {
	return entity.ResolvedLocation{
		ID:          result.ID,
		Name:        result.Name,
		Country:     result.Country,
		CountryCode: result.CountryCode,
		Admin1:      result.Admin1,
		Timezone:    result.Timezone,
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
	}
}

func validCoordinates(latitude float64, longitude float64) bool {
	return numberutils.IsFloat64InRange(latitude, -90, 90) && numberutils.IsFloat64InRange(longitude, -180, 180)
}

// unwrapCause returns the underlying failure of a WeatherAPIError for logging
func unwrapCause(err error) error {
	if apiErr, ok := err.(*model.WeatherAPIError); ok && apiErr.Err != nil {
		return apiErr.Err
	}
	return err
}

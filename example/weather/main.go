package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/resource"
)

// Prints the forecast of the city given as arguments, e.g.
//
//	go run ./example/weather Porto Alegre
func main() {
	city := strings.Join(os.Args[1:], " ")
	if city == "" {
		city = resource.GetString("weather.default-city")
	}

	options := http.ClientOptions{
		FollowRedirect: true,
		ReadTimeout:    resource.GetDuration("weather.http.read-timeout"),
		Logger:         http.NewZapLogger("example"),
	}
	days := resource.GetInt("weather.forecast.days")
	useCase := weather.NewWeatherUseCase(days,
		api.NewGeocodingGateway(resource.GetString("weather.geocoding.base-url"), resource.GetInt("weather.geocoding.count"), resource.GetString("weather.geocoding.language"), options),
		api.NewForecastGateway(resource.GetString("weather.forecast.base-url"), days, resource.GetString("weather.forecast.wind-speed-unit"), options),
		nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := useCase.GetWeatherByCity(ctx, city)
	if err != nil {
		log.Error("Lookup failed", zap.String("city", city), zap.String("kind", string(model.KindOf(err))), zap.Error(err))
		os.Exit(1)
	}

	view := model.NewWeatherResponse(*result)
	fmt.Printf("%s, %s: %s %s\n", view.Location.Name, view.Location.Country, view.Condition.Icon, view.Condition.Description)
	fmt.Printf("  %s (sensação %s), umidade %s, vento %s %s\n",
		view.Current.Temperature, view.Current.ApparentTemperature, view.Current.Humidity, view.Current.WindSpeed, view.Current.WindDirection)
	fmt.Printf("  hoje: %s / %s, nascer %s, pôr %s\n", view.Today.TemperatureMax, view.Today.TemperatureMin, view.Today.Sunrise, view.Today.Sunset)
	for _, day := range view.Forecast {
		fmt.Printf("  %-16s %s %s / %s  %s\n", day.Date, day.Condition.Icon, day.TemperatureMax, day.TemperatureMin, day.PrecipitationProbability)
	}
}

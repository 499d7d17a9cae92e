package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "go-weather/configs"
	"go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/metrics"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"

	pkghttp "go-weather/pkg/http"
)

// @title go-weather
// @version 1.0
// @description Current weather and daily forecast backed by the Open-Meteo forecast and geocoding APIs.
// @BasePath /go-weather
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	appMetrics := metrics.New()
	middleware.Setup(e, appMetrics)

	contextPath := resource.GetString("app.server.context-path")
	router := e.Group(contextPath)
	docs.SwaggerInfo.BasePath = contextPath

	// Init Gateways
	geocodingGateway := api.NewGeocodingGateway(
		resource.GetString("weather.geocoding.base-url"),
		resource.GetInt("weather.geocoding.count"),
		resource.GetString("weather.geocoding.language"),
		clientOptions(appMetrics, "geocoding"))
	forecastGateway := api.NewForecastGateway(
		resource.GetString("weather.forecast.base-url"),
		resource.GetInt("weather.forecast.days"),
		resource.GetString("weather.forecast.wind-speed-unit"),
		clientOptions(appMetrics, "forecast"))

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(geocodingGateway, forecastGateway)
	weatherUseCase := weather.NewWeatherUseCase(resource.GetInt("weather.forecast.days"), geocodingGateway, forecastGateway, appMetrics)

	// Init Controller
	healthController := controller.NewHealthController(router, healthUseCase)
	weatherController := controller.NewWeatherController(router, weatherUseCase, resource.GetString("weather.default-city"))
	metricsController := controller.NewMetricsController(router, appMetrics)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	metricsController.InitMetricsRoutes()
	router.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	go func() {
		if err := e.Start(":" + resource.GetString("app.server.port")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started"), zap.String("port", resource.GetString("app.server.port")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info(msg.GetMessage("app.stopping"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}
}

// clientOptions builds the upstream client options; every call is logged and counted under upstream
func clientOptions(m *metrics.Metrics, upstream string) pkghttp.ClientOptions {
	return pkghttp.ClientOptions{
		FollowRedirect:    true,
		ConnectionTimeout: resource.GetDuration("weather.http.connection-timeout"),
		ReadTimeout:       resource.GetDuration("weather.http.read-timeout"),
		DefaultHeaders:    map[string]string{"Accept": "application/json"},
		Logger: pkghttp.MultiLogger{
			pkghttp.NewZapLogger(upstream),
			m.Upstream(upstream),
		},
	}
}

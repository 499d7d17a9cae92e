package api

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/msg"
)

const geocodingMessages = "weather.geocoding"

// geocodingGatewayImpl implements the GeocodingGateway interface
type geocodingGatewayImpl struct {
	httpClient *http.Client
	count      int
	language   string
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client.
// count caps the number of candidates and language selects the localized names.
func NewGeocodingGateway(baseUrl string, count int, language string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		count:      count,
		language:   language,
	}
}

// SearchLocations searches places by name
func (g *geocodingGatewayImpl) SearchLocations(ctx context.Context, name string) (*external.GeocodingResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.NewInvalidInputError(msg.GetMessage("weather.validation.empty-city"))
	}

	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/search").
		WithQueryParams(map[string]string{
			"name":     name,
			"count":    strconv.Itoa(g.count),
			"language": g.language,
			"format":   "json",
		}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toWeatherAPIError(geocodingMessages, errResp, err)
	}

	response := successResp.(*external.GeocodingResponse)
	if len(response.Results) == 0 {
		return nil, model.NewNotFoundError(msg.GetMessage(geocodingMessages + ".not-found"))
	}

	return response, nil
}

// Health searches a well known city and reports whether the API answered
func (g *geocodingGatewayImpl) Health(ctx context.Context) model.ComponentHealthStatus {
	start := time.Now()
	_, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithPath("/search").
		WithQueryParams(map[string]string{"name": "Brasília", "count": "1", "format": "json"}).
		WithSuccessResp(&external.GeocodingResponse{}).
		Execute()

	return componentHealth(g.httpClient.BaseURL(), status, time.Since(start), err, "health.geocoding-down")
}

func componentHealth(baseURL string, status int, latency time.Duration, err error, downMessage string) model.ComponentHealthStatus {
	details := map[string]string{
		"baseUrl": baseURL,
		"latency": latency.String(),
	}
	if status != 0 {
		details["httpStatus"] = strconv.Itoa(status)
	}

	if err != nil {
		details["error"] = msg.GetMessage(downMessage, err)
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-weather/internal/domain/model"
	pkghttp "go-weather/pkg/http"
)

const saoPauloGeocoding = `{
  "results": [
    {"id": 3448439, "name": "São Paulo", "latitude": -23.5475, "longitude": -46.63611, "elevation": 769.0,
     "feature_code": "PPLA", "country_code": "BR", "country": "Brasil", "timezone": "America/Sao_Paulo",
     "population": 10021295, "admin1": "São Paulo"},
    {"id": 3448433, "name": "São Paulo de Olivença", "latitude": -3.37833, "longitude": -68.8725,
     "country_code": "BR", "country": "Brasil"}
  ],
  "generationtime_ms": 0.71
}`

func TestGeocodingGateway_SearchLocations_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/search", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "São Paulo", query.Get("name"))
		assert.Equal(t, "10", query.Get("count"))
		assert.Equal(t, "pt", query.Get("language"))
		assert.Equal(t, "json", query.Get("format"))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(saoPauloGeocoding))
	}))
	defer server.Close()

	gateway := NewGeocodingGateway(server.URL+"/v1", 10, "pt", pkghttp.ClientOptions{})
	response, err := gateway.SearchLocations(context.Background(), "São Paulo")

	require.NoError(t, err)
	require.Len(t, response.Results, 2)
	assert.Equal(t, "São Paulo", response.Results[0].Name)
	assert.Equal(t, "Brasil", response.Results[0].Country)
	assert.Equal(t, "BR", response.Results[0].CountryCode)
	assert.InDelta(t, -23.5475, response.Results[0].Latitude, 1e-9)
	assert.Equal(t, "São Paulo de Olivença", response.Results[1].Name)
	assert.InDelta(t, 0.71, response.GenerationTimeMs, 1e-9)
}

func TestGeocodingGateway_SearchLocations_NoResults(t *testing.T) {
	for name, body := range map[string]string{
		"absent results": `{"generationtime_ms": 0.4}`,
		"empty results":  `{"results": [], "generationtime_ms": 0.4}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			gateway := NewGeocodingGateway(server.URL, 10, "pt", pkghttp.ClientOptions{})
			response, err := gateway.SearchLocations(context.Background(), "Xyzzyville")

			assert.Nil(t, response)
			assert.Equal(t, model.KindNotFound, model.KindOf(err))
			assert.Equal(t, "Cidade não encontrada", err.Error())
		})
	}
}

func TestGeocodingGateway_SearchLocations_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": true, "reason": "Internal error"}`))
	}))
	defer server.Close()

	gateway := NewGeocodingGateway(server.URL, 10, "pt", pkghttp.ClientOptions{})
	_, err := gateway.SearchLocations(context.Background(), "Recife")

	var apiErr *model.WeatherAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.KindHTTP, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Erro ao buscar localizações", apiErr.Message)
	assert.Contains(t, apiErr.Unwrap().Error(), "Internal error")
	assert.NotEqual(t, "Cidade não encontrada", apiErr.Message)
}

func TestGeocodingGateway_SearchLocations_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	gateway := NewGeocodingGateway(baseURL, 10, "pt", pkghttp.ClientOptions{})
	_, err := gateway.SearchLocations(context.Background(), "Recife")

	assert.Equal(t, model.KindTransport, model.KindOf(err))
	assert.Equal(t, "Erro de conexão ao buscar localizações", err.Error())
}

func TestGeocodingGateway_SearchLocations_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": "nope"}`))
	}))
	defer server.Close()

	gateway := NewGeocodingGateway(server.URL, 10, "pt", pkghttp.ClientOptions{})
	_, err := gateway.SearchLocations(context.Background(), "Recife")

	assert.Equal(t, model.KindParse, model.KindOf(err))
}

func TestGeocodingGateway_SearchLocations_EmptyName(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer server.Close()

	gateway := NewGeocodingGateway(server.URL, 10, "pt", pkghttp.ClientOptions{})
	_, err := gateway.SearchLocations(context.Background(), "   ")

	assert.Equal(t, model.KindInvalidInput, model.KindOf(err))
	assert.False(t, called)
}

func TestGeocodingGateway_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(saoPauloGeocoding))
	}))

	gateway := NewGeocodingGateway(server.URL, 10, "pt", pkghttp.ClientOptions{})
	health := gateway.Health(context.Background())
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "200", health.Details["httpStatus"])
	assert.Equal(t, server.URL, health.Details["baseUrl"])

	server.Close()
	health = gateway.Health(context.Background())
	assert.Equal(t, model.StatusDown, health.Status)
	assert.Contains(t, health.Details["error"], "Serviço de geocodificação indisponível")
}

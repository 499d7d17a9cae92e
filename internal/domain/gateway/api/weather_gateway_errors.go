package api

import (
	"errors"
	"fmt"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/msg"
)

// toWeatherAPIError maps a pkg/http failure to the domain error kinds.
// messagePrefix selects the message family, e.g. "weather.geocoding".
func toWeatherAPIError(messagePrefix string, errResp any, err error) *model.WeatherAPIError {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil && apiErr.Reason != "" {
		err = fmt.Errorf("%s: %w", apiErr.Reason, err)
	}

	var statusErr *http.StatusError
	switch {
	case errors.As(err, &statusErr):
		return model.NewHTTPError(msg.GetMessage(messagePrefix+".http"), statusErr.StatusCode, err)
	case errors.Is(err, http.ErrDecode):
		return model.NewParseError(msg.GetMessage(messagePrefix+".parse"), err)
	default:
		return model.NewTransportError(msg.GetMessage(messagePrefix+".transport"), err)
	}
}

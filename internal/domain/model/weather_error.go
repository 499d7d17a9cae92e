package model

import "errors"

// ErrorKind tells callers why a weather lookup failed.
type ErrorKind string

const (
	KindTransport    ErrorKind = "transport_failure"
	KindHTTP         ErrorKind = "http_error"
	KindNotFound     ErrorKind = "not_found"
	KindParse        ErrorKind = "parse_error"
	KindInvalidInput ErrorKind = "invalid_input"
)

// WeatherAPIError is the single error type returned across the domain boundary.
// Message is human readable and safe to show to end users; Status carries the
// upstream HTTP status for KindHTTP and is zero otherwise.
type WeatherAPIError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *WeatherAPIError) Error() string {
	return e.Message
}

func (e *WeatherAPIError) Unwrap() error {
	return e.Err
}

func NewTransportError(message string, err error) *WeatherAPIError {
	return &WeatherAPIError{Kind: KindTransport, Message: message, Err: err}
}

func NewHTTPError(message string, status int, err error) *WeatherAPIError {
	return &WeatherAPIError{Kind: KindHTTP, Message: message, Status: status, Err: err}
}

func NewNotFoundError(message string) *WeatherAPIError {
	return &WeatherAPIError{Kind: KindNotFound, Message: message}
}

func NewParseError(message string, err error) *WeatherAPIError {
	return &WeatherAPIError{Kind: KindParse, Message: message, Err: err}
}

func NewInvalidInputError(message string) *WeatherAPIError {
	return &WeatherAPIError{Kind: KindInvalidInput, Message: message}
}

// KindOf returns the kind of a WeatherAPIError anywhere in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var apiErr *WeatherAPIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

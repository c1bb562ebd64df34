package detailingapi

import "errors"

var (
	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("detailingapi client: internal error")

	// ErrInvalidResponse is returned when the backend's response cannot be
	// understood.
	ErrInvalidResponse = errors.New("detailingapi client: invalid response")

	// ErrUnavailable is returned when the backend could not be reached after
	// retries.
	ErrUnavailable = errors.New("detailingapi client: backend unavailable")
)

// APIError carries a structured rejection from the backend's response
// envelope.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

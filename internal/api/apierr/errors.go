package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stardrift-game/stardrift/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeInsufficientCargo  = "INSUFFICIENT_CARGO"
	CodeAlreadyOwned       = "ALREADY_OWNED"
	CodeAlreadyCompleted   = "ALREADY_COMPLETED"
	CodeLockedTier         = "LOCKED_TIER"
	CodeInvalidLevel       = "INVALID_LEVEL"
	CodeUnknownItem        = "UNKNOWN_ITEM"
	CodeSuspectedCheating  = "SUSPECTED_CHEATING"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors. All business-rule rejections are client-facing
	// and non-retryable; only storage outages are retryable.
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrInsufficientFunds):
		return &httpError{http.StatusBadRequest, APIError{CodeInsufficientFunds, "Not enough funds"}}
	case errors.Is(err, model.ErrInsufficientCargo):
		return &httpError{http.StatusBadRequest, APIError{CodeInsufficientCargo, "Nothing to collect"}}
	case errors.Is(err, model.ErrAlreadyOwned):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyOwned, "Already owned"}}
	case errors.Is(err, model.ErrAlreadyCompleted):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyCompleted, "Task already completed"}}
	case errors.Is(err, model.ErrLockedTier):
		return &httpError{http.StatusForbidden, APIError{CodeLockedTier, "Previous tier must be owned first"}}
	case errors.Is(err, model.ErrInvalidLevel):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLevel, "Invalid cargo level"}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Amount must be positive"}}
	case errors.Is(err, model.ErrUnknownDrone):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownItem, "Unknown drone"}}
	case errors.Is(err, model.ErrUnknownAsteroid):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownItem, "Unknown asteroid"}}
	case errors.Is(err, model.ErrUnknownCargoTier):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownItem, "Unknown cargo tier"}}
	case errors.Is(err, model.ErrUnknownTask):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownItem, "Unknown task"}}
	case errors.Is(err, model.ErrSuspectedCheating):
		return &httpError{http.StatusForbidden, APIError{CodeSuspectedCheating, "Tap batch failed plausibility checks"}}
	case errors.Is(err, model.ErrStorageUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStorageUnavailable, "Storage temporarily unavailable"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

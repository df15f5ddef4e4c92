package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/promoplay/eggdraw/internal/model"
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
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeNotEligible      = "NOT_ELIGIBLE"
	CodeAlreadyPlayed    = "ALREADY_PLAYED"
	CodeNoPrizeAvailable = "NO_PRIZE_AVAILABLE"
	CodePlayerExists     = "PLAYER_EXISTS"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternalError    = "INTERNAL_ERROR"
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

// toHTTPError converts an error to an httpError. Business-rule failures map
// to distinct, stable messages; anything else becomes a generic try-again
// response so storage details never leak to the player.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrNotEligible), errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotEligible, "VAT number not authorized to play"}}
	case errors.Is(err, model.ErrAlreadyPlayed):
		return &httpError{http.StatusForbidden, APIError{CodeAlreadyPlayed, "You have already played with this VAT number"}}
	case errors.Is(err, model.ErrNoPrizeAvailable):
		return &httpError{http.StatusNotFound, APIError{CodeNoPrizeAvailable, "No prize available"}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, "VAT number already exists in the system"}}
	case errors.Is(err, model.ErrCatalogNotLoaded):
		return &httpError{http.StatusNotFound, APIError{CodeNoPrizeAvailable, "No prize available"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Something went wrong, please try again"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Something went wrong, please try again"}}
}

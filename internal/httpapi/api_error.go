package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hazicy/override-rules/internal/fetch"
	"github.com/hazicy/override-rules/internal/model"
	"github.com/hazicy/override-rules/internal/override"
	"github.com/hazicy/override-rules/internal/synth"
)

// APIError is used by the HTTP layer for request validation and a few
// HTTP-specific errors.
type APIError struct {
	Status   int
	AppError model.AppError
	Cause    error
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.AppError.Code, e.AppError.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.AppError.Code, e.AppError.Message, e.Cause)
}

func (e *APIError) Unwrap() error { return e.Cause }

func requestError(code, message, hint string) error {
	return &APIError{
		Status: http.StatusBadRequest,
		AppError: model.AppError{
			Code:    code,
			Message: message,
			Stage:   "validate_request",
			Hint:    hint,
		},
	}
}

// classifyErr maps a pipeline error to its HTTP status and payload.
func classifyErr(err error) (int, model.AppError) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status, ae.AppError
	}

	var fe *fetch.FetchError
	if errors.As(err, &fe) {
		return fe.Status, fe.AppError
	}

	// Upstream content errors => 422.
	var oe *override.ApplyError
	if errors.As(err, &oe) {
		return http.StatusUnprocessableEntity, oe.AppError
	}

	// Graph construction defects are our bug (or a broken catalog), not the
	// caller's.
	var be *synth.BuildError
	if errors.As(err, &be) {
		return http.StatusInternalServerError, be.AppError
	}

	return http.StatusInternalServerError, model.AppError{
		Code:    "INTERNAL_ERROR",
		Message: "服务端内部错误",
		Stage:   "internal",
		Hint:    err.Error(),
	}
}

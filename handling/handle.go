package handling

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"paintvault_server/lib"
	"strings"

	"github.com/MonkyMars/gecho"
)

// RespondError maps a service error onto the wire format. AppErrors
// carry their own code/message/detail; anything else becomes an
// opaque internal error so driver details never leak.
func RespondError(w http.ResponseWriter, logger *gecho.Logger, err error) {
	appErr, ok := lib.AsAppError(err)
	if !ok {
		appErr = classify(err)
	}

	if appErr.Status >= http.StatusInternalServerError {
		logger.Error("Request failed", gecho.Field("code", appErr.Code), gecho.Field("error", err), gecho.WithCallerSkip(3))
	} else {
		logger.Debug("Request rejected", gecho.Field("code", appErr.Code), gecho.Field("error", err))
	}

	switch appErr.Status {
	case http.StatusNotFound:
		gecho.NotFound(w, gecho.WithMessage(appErr.Message), gecho.WithData(appErr), gecho.Send())
	case http.StatusConflict:
		gecho.Conflict(w, gecho.WithMessage(appErr.Message), gecho.WithData(appErr), gecho.Send())
	case http.StatusUnauthorized:
		gecho.Unauthorized(w, gecho.WithMessage(appErr.Message), gecho.WithData(appErr), gecho.Send())
	case http.StatusForbidden:
		gecho.Forbidden(w, gecho.WithMessage(appErr.Message), gecho.WithData(appErr), gecho.Send())
	case http.StatusTooManyRequests:
		gecho.TooManyRequests(w, gecho.WithMessage(appErr.Message), gecho.WithData(appErr), gecho.Send())
	case http.StatusBadRequest:
		gecho.BadRequest(w, gecho.WithMessage(appErr.Message), gecho.WithData(appErr), gecho.Send())
	default:
		gecho.InternalServerError(w, gecho.WithMessage(appErr.Message), gecho.WithData(appErr), gecho.Send())
	}
}

// classify maps sentinel and validation errors that never got wrapped
// into an AppError
func classify(err error) *lib.AppError {
	var validationErr *lib.ValidationError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &validationErr):
		return lib.NewValidation("request body failed validation", validationErr.Errors)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr),
		errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF),
		strings.HasPrefix(err.Error(), "json: unknown field"):
		return lib.NewValidation("request body is not valid JSON", nil)
	case errors.Is(err, lib.ErrNotFound):
		return lib.NewNotFound("resource not found")
	case errors.Is(err, lib.ErrConflict):
		return lib.NewDuplicateKey("resource already exists")
	case errors.Is(err, lib.ErrInvalidCredentials):
		return lib.NewUnauthorized("invalid credentials")
	case errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrExpiredToken):
		return lib.NewUnauthorized("invalid or expired token")
	default:
		return lib.NewInternal(err)
	}
}

package lib

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Error codes surfaced in the response body
const (
	CodeNotFound       = "not_found"
	CodeDuplicateKey   = "duplicate_key"
	CodeValidation     = "validation"
	CodeInvalidProduct = "invalid_product"
	CodeUnknownLocale  = "unknown_locale"
	CodeUnauthorized   = "unauthorized"
	CodeForbidden      = "forbidden"
	CodeRateLimited    = "rate_limited"
	CodeInternal       = "internal"
)

// AppError is the machine-readable error carried from services to the
// HTTP boundary. Status is the HTTP status it maps to.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, Status: http.StatusNotFound, Err: ErrNotFound}
}

func NewDuplicateKey(message string) *AppError {
	return &AppError{Code: CodeDuplicateKey, Message: message, Status: http.StatusConflict, Err: ErrConflict}
}

func NewValidation(message string, detail any) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Detail: detail, Status: http.StatusBadRequest}
}

// NewInvalidProduct marks a product whose color ranges all failed
// enum coercion; the vendor transaction rolls back on it.
func NewInvalidProduct(productName string) *AppError {
	return &AppError{
		Code:    CodeInvalidProduct,
		Message: "product has no valid color range",
		Detail:  map[string]string{"product": productName},
		Status:  http.StatusBadRequest,
	}
}

// NewUnknownLocale surfaces the offending variant's SKU
func NewUnknownLocale(languageCode, countryCode, sku string) *AppError {
	return &AppError{
		Code:    CodeUnknownLocale,
		Message: fmt.Sprintf("no locale registered for %s-%s", languageCode, countryCode),
		Detail:  map[string]string{"sku": sku},
		Status:  http.StatusBadRequest,
	}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message, Status: http.StatusUnauthorized}
}

func NewForbidden(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message, Status: http.StatusForbidden}
}

func NewInternal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal server error", Status: http.StatusInternalServerError, Err: err}
}

// AsAppError extracts an AppError from an error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// MapPgError translates driver-level SQLSTATE errors into the
// sentinel errors the services branch on. Both the bun pgdriver and
// pgx surface SQLSTATE, depending on which layer produced the error.
func MapPgError(err error) error {
	switch sqlState(err) {
	case "23505": // unique_violation
		return ErrConflict
	case "P0002": // no_data_found
		return ErrNotFound
	}
	return err
}

// IsUniqueViolation reports whether err is a 23505 unique constraint
// violation, the signal the taxonomy upsert retries on.
func IsUniqueViolation(err error) bool {
	return sqlState(err) == "23505"
}

func sqlState(err error) string {
	var drvErr pgdriver.Error
	if errors.As(err, &drvErr) {
		return drvErr.Field('C')
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

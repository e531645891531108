package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DomainError standardizes application errors. Name is the wire-level error
// classifier included in JSON responses.
type DomainError struct {
	Name       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(name, message string, status int) *DomainError {
	return &DomainError{Name: name, Message: message, HTTPStatus: status}
}

func NewBadRequest(message string) error {
	return NewDomainError("BadRequestError", message, http.StatusBadRequest)
}

func NewNotFound(resource string) error {
	return NewDomainError("NotFoundError", fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UnauthorizedError", message, http.StatusUnauthorized)
}

func NewInvalidToken(message string) error {
	return NewDomainError("InvalidTokenError", message, http.StatusUnauthorized)
}

func NewExpiredToken(message string) error {
	return NewDomainError("ExpiredTokenError", message, http.StatusUnauthorized)
}

func NewForbidden(message string) error {
	return NewDomainError("ForbiddenError", message, http.StatusForbidden)
}

func NewConflict(message string) error {
	return NewDomainError("ConflictError", message, http.StatusConflict)
}

func NewInternalError(err error) error {
	return &DomainError{
		Name:       "InternalServerError",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError. pgx row misses map to
// NotFoundError and unique violations to ConflictError so repositories can
// surface storage errors unwrapped.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DomainError{
			Name:       "NotFoundError",
			Message:    "resource not found",
			HTTPStatus: http.StatusNotFound,
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return &DomainError{
			Name:       "ConflictError",
			Message:    "duplicate value for unique field",
			HTTPStatus: http.StatusConflict,
		}
	}
	return &DomainError{
		Name:       "InternalServerError",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint hit.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func MapError(err error) error {
	return ToDomainError(err)
}

// Package apperrors defines the error kinds surfaced by services and the
// translation of storage errors into them.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/uptrace/bun/driver/pgdriver"
)

var (
	// ErrValidation marks input that is out of range or not a recognised value.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation marks uniqueness, check or eligibility failures.
	ErrConstraintViolation = errors.New("constraint violation")
)

const (
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
	sqlStateNotNullViolation    = "23502"
	sqlStateClassDataException  = "22"
)

// Validation returns a validation error with the given message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns a not found error for the named entity.
func NotFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// Constraint returns a constraint violation with the given message.
func Constraint(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstraintViolation, fmt.Sprintf(format, args...))
}

// SQLState returns the SQLSTATE code of a postgres error, or "" when err is not one.
func SQLState(err error) string {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

// TranslateDB maps integrity violations and data exceptions reported by
// postgres onto the error kinds above. Foreign key violations become
// ErrNotFound because they mean a referenced row does not exist. Data
// exceptions (SQLSTATE class 22, such as a NUL byte in text) become
// ErrValidation. Other errors are returned unchanged.
func TranslateDB(err error) error {
	if err == nil {
		return nil
	}
	var pgErr pgdriver.Error
	if !errors.As(err, &pgErr) {
		return err
	}

	detail := pgErr.Field('D')
	if detail == "" {
		detail = pgErr.Field('M')
	}

	if isDataException(pgErr.Field('C')) {
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	}
	if !pgErr.IntegrityViolation() {
		return err
	}

	switch pgErr.Field('C') {
	case sqlStateForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case sqlStateUniqueViolation, sqlStateCheckViolation, sqlStateNotNullViolation:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, detail)
	default:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, detail)
	}
}

func isDataException(code string) bool {
	return strings.HasPrefix(code, sqlStateClassDataException)
}

// HTTPStatus maps an error kind to the status code returned by the API.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConstraintViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

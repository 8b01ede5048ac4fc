package apperr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies a failure independently of the entity it concerns.
type Kind string

const (
	KindRequestEmpty    Kind = "request_empty"
	KindNotFound        Kind = "not_found"
	KindDuplicateKey    Kind = "duplicate_key"
	KindConflict        Kind = "conflict"
	KindNoResultsFound  Kind = "no_results_found"
	KindInvalidArgument Kind = "invalid_argument"
	KindInternal        Kind = "internal"
)

// Entity names the kind of record an error refers to.
type Entity string

const (
	EntityCountry    Entity = "country"
	EntityCity       Entity = "city"
	EntityVenue      Entity = "venue"
	EntityCategory   Entity = "category"
	EntityUser       Entity = "user"
	EntityEvent      Entity = "event"
	EntityReview     Entity = "review"
	EntityFavourite  Entity = "favourite"
	EntityInterested Entity = "interested"
)

// Error is the typed failure returned by the service layer.
type Error struct {
	Kind    Kind
	Entity  Entity
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s", op, msg)
	case msg != "":
		return msg
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Kind)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an error with an explicit kind, entity and operation.
func New(kind Kind, entity Entity, op, message string) error {
	return &Error{
		Kind:    kind,
		Entity:  entity,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
	}
}

func RequestEmpty(entity Entity, op string) error {
	return New(KindRequestEmpty, entity, op, fmt.Sprintf("%s request is empty", entity))
}

// NotFound reports a missing entity, e.g. "venue not found: id 42".
func NotFound(entity Entity, op, format string, args ...any) error {
	msg := fmt.Sprintf("%s not found", entity)
	if format != "" {
		msg += ": " + fmt.Sprintf(format, args...)
	}
	return New(KindNotFound, entity, op, msg)
}

func DuplicateKey(entity Entity, op, field, value string) error {
	return New(KindDuplicateKey, entity, op, fmt.Sprintf("%s with %s %q already exists", entity, field, value))
}

func Conflict(entity Entity, op, format string, args ...any) error {
	return New(KindConflict, entity, op, fmt.Sprintf(format, args...))
}

func NoResults(entity Entity, op, format string, args ...any) error {
	msg := fmt.Sprintf("no %s results found", entity)
	if format != "" {
		msg += ": " + fmt.Sprintf(format, args...)
	}
	return New(KindNoResultsFound, entity, op, msg)
}

func Invalid(entity Entity, op, format string, args ...any) error {
	return New(KindInvalidArgument, entity, op, fmt.Sprintf(format, args...))
}

// Wrap annotates err with the given kind. A nil err yields nil.
func Wrap(kind Kind, entity Entity, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    kind,
		Entity:  entity,
		Op:      strings.TrimSpace(op),
		Message: err.Error(),
		Cause:   err,
	}
}

// IsKind reports whether err (or anything it wraps) carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Kind == kind
}

// KindOf extracts the kind, defaulting to KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return KindInternal
	}
	return appErr.Kind
}

// EntityOf extracts the entity an error refers to, if any.
func EntityOf(err error) Entity {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return ""
	}
	return appErr.Entity
}

// MapError translates storage failures into typed errors. Errors that are
// already typed pass through untouched.
func MapError(entity Entity, op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(KindNotFound, entity, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(KindDuplicateKey, entity, op, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Wrap(KindConflict, entity, op, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return Wrap(KindInvalidArgument, entity, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Wrap(KindInternal, entity, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505": // unique_violation
			return Wrap(KindDuplicateKey, entity, op, err)
		case "23503": // foreign_key_violation
			return Wrap(KindConflict, entity, op, err)
		case "23514": // check_violation
			return Wrap(KindInvalidArgument, entity, op, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint failed"):
		return Wrap(KindDuplicateKey, entity, op, err)
	case strings.Contains(msg, "foreign key constraint failed"):
		return Wrap(KindConflict, entity, op, err)
	case strings.Contains(msg, "check constraint failed"):
		return Wrap(KindInvalidArgument, entity, op, err)
	default:
		return Wrap(KindInternal, entity, op, err)
	}
}

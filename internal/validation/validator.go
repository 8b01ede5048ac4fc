package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
)

// Validator runs the precondition checks shared by every entity kind. T is
// the entity the checks are bound to; failures carry that entity's name.
type Validator[T any] struct {
	entity apperr.Entity
}

func For[T any](entity apperr.Entity) Validator[T] {
	return Validator[T]{entity: entity}
}

func (v Validator[T]) Entity() apperr.Entity { return v.entity }

// CheckRequestNotNull fails with RequestEmpty when req is nil or a nil
// pointer.
func (v Validator[T]) CheckRequestNotNull(op string, req any) error {
	if isNil(req) {
		return apperr.RequestEmpty(v.entity, op)
	}
	return nil
}

// CheckIDValid fails with NotFound when id is absent or not strictly
// positive.
func (v Validator[T]) CheckIDValid(op string, id int64) error {
	if id <= 0 {
		return apperr.NotFound(v.entity, op, "invalid id %d", id)
	}
	return nil
}

// CheckObjectExist fails with NotFound when a lookup produced nothing.
func (v Validator[T]) CheckObjectExist(op string, obj *T, id int64) error {
	if obj == nil {
		return apperr.NotFound(v.entity, op, "id %d", id)
	}
	return nil
}

// CheckRequest combines the nil check with the request's struct tags.
func (v Validator[T]) CheckRequest(op string, req any) error {
	if err := v.CheckRequestNotNull(op, req); err != nil {
		return err
	}
	if err := models.Validate.Struct(req); err != nil {
		return apperr.Invalid(v.entity, op, "%s", describe(err))
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "email", "e164", "alpha":
		return fmt.Sprintf("%s is not a valid %s", field, fe.Tag())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

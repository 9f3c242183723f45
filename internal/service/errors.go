package service

import (
	"fmt"

	"go-erp-admin/internal/repository"
	"go-erp-admin/pkg/validator"

	"github.com/pkg/errors"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidSmsCode       = errors.New("invalid verification code")
	ErrUnsupportedLoginType = errors.New("unsupported login type")
)

// NotFoundError names the record an operation could not find
type NotFoundError struct {
	Entity string
	ID     interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// GuardError rejects a delete that would leave dangling references
type GuardError struct {
	Entity string
	ID     int64
	Reason string
}

func (e *GuardError) Error() string { return e.Reason }

// ValidationError carries the failed fields of a payload
type ValidationError struct {
	Fields []*validator.ErrorResponse
}

func (e *ValidationError) Error() string { return validator.Message(e.Fields) }

func validate(payload interface{}) error {
	if errs := validator.ValidateStruct(payload); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// notFound turns a repository miss into a NotFoundError for entity
func notFound(err error, entity string, id interface{}) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}

package repository

import (
	"errors"
	"fmt"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// DuplicateError reports which unique employee field collided with an
// existing record.
type DuplicateError struct {
	Field string // "employee_id" or "email"
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s %q", e.Field, e.Value)
}

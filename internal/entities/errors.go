package entities

import "errors"

var (
	// ErrEmployeeNotFound is returned when no employee exists for the given id
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmailExists is returned when the email is already taken by another
	// employee. The unique constraint on the employees table is the source of
	// truth; the service-level existence check is only an early exit.
	ErrEmailExists = errors.New("email already exists")
)

// Package apperror defines the error taxonomy shared by the repository and
// service layers. Repositories raise Validation and Store errors; the service
// decides when absence becomes NotFound. The HTTP error middleware translates
// each kind into a response status exactly once.
package apperror

import "fmt"

// ValidationError means caller-supplied data failed a field rule, or an id
// was non-positive. Always recoverable by the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is raised at the service boundary when a resource the caller
// addressed does not exist. Repositories return nil/0 instead.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// StoreError wraps an unexpected failure of the underlying persistence
// operation. Not retried; surfaced as a server error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

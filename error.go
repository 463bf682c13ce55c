package propology

import (
	"errors"
	"fmt"
)

// InvalidInputError is returned when a subject can not be introspected
type InvalidInputError struct {
	//Kind holds subject kind, i.e. "nil", "string", "func"
	Kind   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid input: %s is not introspectable", e.Kind)
	}
	return fmt.Sprintf("invalid input: %s %s", e.Kind, e.Reason)
}

// IsInvalidInput returns true if err is or wraps InvalidInputError
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

func newInvalidInputError(kind string, reason string) error {
	return &InvalidInputError{Kind: kind, Reason: reason}
}

package booking

import (
	"errors"
	"fmt"
	"strings"

	"glossify/models"
)

var (
	// ErrStepOutOfRange is returned for navigation targets outside [1,5].
	ErrStepOutOfRange = errors.New("booking: step out of range")

	// ErrNavigationBlocked is returned when a forward move is refused
	// because the current step is invalid or incomplete.
	ErrNavigationBlocked = errors.New("booking: current step is not complete")
)

// PreconditionError marks an operation invoked before its required inputs
// exist: a sequencing bug in the caller, not something the user can fix by
// editing a field.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("booking: %s called out of order: %s", e.Op, e.Reason)
}

// ValidationFailedError carries the full violation list for a refused
// submission. Nothing was sent to the backend.
type ValidationFailedError struct {
	Errors []models.ValidationError
}

func (e *ValidationFailedError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		fields = append(fields, ve.Field)
	}
	return fmt.Sprintf("booking: validation failed on %d field(s): %s",
		len(e.Errors), strings.Join(fields, ", "))
}

// TransportError wraps an external API or network failure. The form state is
// left untouched; the caller surfaces the message to the user.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("booking: %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

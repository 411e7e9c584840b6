package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes of the engine's failure taxonomy.
const (
	CodeConfiguration        = "CONFIGURATION"
	CodeCapacityMismatch     = "CAPACITY_MISMATCH"
	CodeSubjectUnschedulable = "SUBJECT_UNSCHEDULABLE"
	CodeInfeasible           = "INFEASIBLE"
	CodeTimeout              = "TIMEOUT"
	CodeInternal             = "INTERNAL_ERROR"
)

// Error is a typed domain error with HTTP awareness. Failures cross the
// engine boundary as values; callers surface Message verbatim.
type Error struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so callers can compare against taxonomy
// prototypes without caring about the formatted message.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

func newError(code string, status int, format string, args ...any) *Error {
	return &Error{Code: code, Status: status, Message: fmt.Sprintf(format, args...)}
}

// NewConfigurationError reports a request that cannot even reach slot
// construction.
func NewConfigurationError(format string, args ...any) *Error {
	return newError(CodeConfiguration, http.StatusBadRequest, format, args...)
}

// NewCapacityMismatchError reports a demand/capacity imbalance detected
// before any search.
func NewCapacityMismatchError(format string, args ...any) *Error {
	return newError(CodeCapacityMismatch, http.StatusUnprocessableEntity, format, args...)
}

// NewSubjectUnschedulableError reports a subject whose availability window
// admits no feasible block start on the generated grid.
func NewSubjectUnschedulableError(subject string) *Error {
	return newError(CodeSubjectUnschedulable, http.StatusUnprocessableEntity,
		"no feasible start slots for subject %q given availability and day boundaries", subject)
}

// NewInfeasibleError reports a search that exhausted every branch without
// finding a valid timetable.
func NewInfeasibleError() *Error {
	return newError(CodeInfeasible, http.StatusUnprocessableEntity,
		"no valid timetable found with the given constraints; try relaxing constraints or double-check availability and hours")
}

// NewTimeoutError reports a search stopped by its budget: the instance is
// undetermined, not proven infeasible.
func NewTimeoutError() *Error {
	return newError(CodeTimeout, http.StatusGatewayTimeout,
		"timetable search exceeded its time budget before reaching a conclusion")
}

// AsError normalises any error into an *Error, wrapping unknown errors as
// internal ones.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &Error{Code: CodeInternal, Status: http.StatusInternalServerError, Message: "internal timetabling error", Err: err}
}

package errors

import (
	"fmt"
	"strings"
)

// Kind groups domain errors by how the caller should surface them.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindComputation Kind = "computation"
	KindAssignment  Kind = "assignment"
	KindNotFound    Kind = "not_found"
)

// DomainError is a sentinel error with a stable machine readable code.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// ValidationError carries the soft errors collected by a validator. The
// messages are meant to be shown to the end user verbatim.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError wraps validator output.
func NewValidationError(messages []string) *ValidationError {
	out := make([]string, len(messages))
	copy(out, messages)
	return &ValidationError{Messages: out}
}

// ComputationError ties a computation failure to the rule that produced it.
type ComputationError struct {
	RuleIndex int
	Err       error
}

func (e *ComputationError) Error() string {
	if e.RuleIndex > 0 {
		return fmt.Sprintf("rule %d: %v", e.RuleIndex, e.Err)
	}
	return e.Err.Error()
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

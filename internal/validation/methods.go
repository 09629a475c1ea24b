package validation

import (
	"fmt"
	"strings"
)

// Result is the outcome of a validator run. Errors keep the order in which
// they were found.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validator collects soft errors; it never fails fast.
type Validator struct {
	Errors []string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make([]string, 0)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError appends a formatted error message.
func (v *Validator) AddError(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, format string, args ...interface{}) {
	if !ok {
		v.AddError(format, args...)
	}
}

// Required adds "<prefix><field> is required" when value is blank.
func (v *Validator) Required(prefix, field, value string) {
	v.Check(strings.TrimSpace(value) != "", "%s%s is required", prefix, field)
}

// Result freezes the collected errors.
func (v *Validator) Result() Result {
	errs := make([]string, len(v.Errors))
	copy(errs, v.Errors)
	return Result{Valid: len(errs) == 0, Errors: errs}
}

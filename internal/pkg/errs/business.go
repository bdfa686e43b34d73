package errs

import (
	"fmt"
	"strings"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string
	Message string
}

func NewFieldError(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// ValidationError aggregates field errors produced while validating caller input.
// The caller is expected to correct every listed field and resubmit.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Has reports whether the given field was rejected.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// ConflictError is returned when a compare-and-swap or uniqueness guard loses a race
// (double booking, double settlement). The caller should re-read and retry.
type ConflictError struct {
	Entity string
	ID     any
	Reason string
}

func NewConflictError(entity string, id any, reason string) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, Reason: reason}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrConflict, e.Entity, sanitize(e.ID), e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// RateUnavailableError is returned when no rate card matches a zone, carrier and weight.
type RateUnavailableError struct {
	Zone        string
	Carriers    []string
	WeightGrams float64
}

func NewRateUnavailableError(zone string, carriers []string, weightGrams float64) *RateUnavailableError {
	return &RateUnavailableError{Zone: zone, Carriers: carriers, WeightGrams: weightGrams}
}

func (e *RateUnavailableError) Error() string {
	carriers := "any"
	if len(e.Carriers) > 0 {
		carriers = strings.Join(e.Carriers, ",")
	}
	return fmt.Sprintf("%s: zone %s, carriers %s, chargeable weight %.2fg", ErrRateUnavailable, e.Zone, carriers, e.WeightGrams)
}

func (e *RateUnavailableError) Unwrap() error {
	return ErrRateUnavailable
}

// InvalidTransitionError is returned when a state machine refuses a transition.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

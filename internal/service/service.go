// Package service holds use-case orchestration around the statistics engine.
// Kept intentionally lean: input validation, logging and domain error shaping only.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/tournament-standings/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures.
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a tournament document.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var v interface{ Fields() []FieldError }
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// StatisticsService defines the statistics use cases.
type StatisticsService interface {
	// ComputeStatistics validates one tournament and returns its standings and highlights.
	// A nil tournament is not an error: it yields the zeroed result.
	ComputeStatistics(ctx context.Context, t *model.Tournament) (model.Statistics, error)
	// ComputeBatch computes independent tournaments concurrently; results keep input order.
	ComputeBatch(ctx context.Context, ts []*model.Tournament) ([]model.Statistics, error)
}

// Package response centralizes the CLI's failure shapes and exit codes.
// main relies on it to keep error reporting uniform.
package response

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/maxviazov/tournament-standings/internal/input"
	"github.com/maxviazov/tournament-standings/internal/service"
)

// Exit codes returned by the standings command.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitInvalid  = 2
)

// ErrorPayload is the canonical error envelope written on failure.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an exit code and payload.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return ExitOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return ExitInvalid, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	case errors.Is(err, input.ErrMalformed):
		return ExitInvalid, ErrorPayload{Error: "malformed_document", Message: err.Error()}
	case errors.Is(err, os.ErrNotExist):
		return ExitInternal, ErrorPayload{Error: "not_found", Message: err.Error()}
	default:
		return ExitInternal, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes the error envelope and returns the exit code to use.
func WriteError(w io.Writer, err error) int {
	code, payload := MapError(err)
	_ = json.NewEncoder(w).Encode(payload)
	return code
}

// WriteData writes a successful JSON document.
func WriteData(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

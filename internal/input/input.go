// Package input decodes tournament documents produced by the match generator.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maxviazov/tournament-standings/internal/model"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrMalformed marks documents that are not a single valid tournament JSON value.
var ErrMalformed = errors.New("malformed tournament document")

// Decode reads exactly one tournament document. A JSON null yields a nil tournament.
func Decode(r io.Reader) (*model.Tournament, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var t model.Tournament
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}
	return &t, nil
}

// ReadFile decodes the document at path; Stdin reads from os.Stdin.
func ReadFile(path string) (*model.Tournament, error) {
	if path == Stdin {
		t, err := Decode(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

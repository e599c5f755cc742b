// Package backend reads the local JSON document that stands in for the
// dashboard's remote backend.
package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/pydash/ares/internal/model"
	"github.com/pydash/ares/internal/prompt"
)

// ErrSchema marks a well-formed document that lacks required fields
var ErrSchema = errors.New("backend document does not match schema")

// Warning shown when the soft load path fails
const (
	LoadErrorMessage = "Error: Cannot connect to backend."
	LoadErrorTitle   = "Application Error"
)

// Store reads the backend document from a file
type Store struct {
	path string
}

// NewStore creates a store for the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backend file path
func (s *Store) Path() string {
	return s.path
}

// Load reads, decodes and validates the backend document
func (s *Store) Load() (*model.BackendState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend file: %w", err)
	}

	var state model.BackendState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse backend file: %w", err)
	}

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return &state, nil
}

// Check reports whether the backend file reads and parses as JSON.
// The document shape is not inspected.
func (s *Store) Check() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read backend file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse backend file: %w", err)
	}
	return nil
}

// LoadOrWarn loads the document. On failure it logs the error, shows a
// warning through p and returns nil.
func (s *Store) LoadOrWarn(p prompt.Prompter) *model.BackendState {
	state, err := s.Load()
	if err != nil {
		log.Printf("JSON Error: %v", err)
		if p != nil {
			p.Prompt(prompt.Warning, LoadErrorMessage, LoadErrorTitle, nil)
		}
		return nil
	}
	return state
}

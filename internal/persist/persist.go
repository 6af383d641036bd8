// Package persist stores the working state of an editing session so it
// survives restarts. The state is a single keyed blob: the document, section
// registry, and style settings that make up one resume.
package persist

import (
	"context"

	"github.com/jonathan/resume-builder/internal/types"
)

// StateKey identifies the working-state blob in every backend.
const StateKey = "resume-builder/state"

// State is the persisted aggregate.
type State struct {
	Document      types.Document      `json:"document"`
	Sections      []types.Section     `json:"sections"`
	StyleSettings types.StyleSettings `json:"styleSettings"`
}

// Store loads and saves working state. Load reports ok=false when no state
// has been saved yet; that is not an error.
type Store interface {
	Load(ctx context.Context) (State, bool, error)
	Save(ctx context.Context, state State) error
	Close()
}

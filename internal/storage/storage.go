// Package storage persists board documents under caller-chosen names.
// Backends share the same contract: a load of a board that was never saved
// returns an empty board, not an error, so the application always has
// something to render.
package storage

import (
	"github.com/rxtech-lab/argo-board/internal/types"
)

// Storage saves, loads, and clears named board documents.
type Storage interface {
	// SaveBoard persists the board under the given name, replacing any
	// previous document with that name.
	SaveBoard(name string, board types.Board) error
	// LoadBoard returns the board saved under the given name. A missing or
	// unreadable document yields an empty board.
	LoadBoard(name string) (types.Board, error)
	// ClearBoard removes the board saved under the given name. Clearing a
	// name that was never saved is not an error.
	ClearBoard(name string) error
}

// Package worlds stores world definitions so a running service can describe
// rooms without reloading world files
package worlds

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-perception/internal/world"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=worldsmock github.com/KirkDiggler/rpg-perception/internal/repositories/worlds Repository

// Record is a stored world definition
type Record struct {
	Definition *world.Definition `json:"definition"`

	// Revision increases by one every time the world is saved
	Revision  int64     `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository persists world definitions keyed by world id
type Repository interface {
	// Put stores a definition, replacing any previous revision
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get returns the latest revision of a world
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a world and its revision counter
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the ids of every stored world, sorted
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// PutInput contains the definition to store
type PutInput struct {
	Definition *world.Definition
}

// PutOutput contains the stored record
type PutOutput struct {
	Record *Record
}

// GetInput identifies the world to load
type GetInput struct {
	WorldID string
}

// GetOutput contains the stored record
type GetOutput struct {
	Record *Record
}

// DeleteInput identifies the world to delete
type DeleteInput struct {
	WorldID string
}

// DeleteOutput is empty for now
type DeleteOutput struct{}

// ListInput is empty for now
type ListInput struct{}

// ListOutput contains the ids of stored worlds
type ListOutput struct {
	WorldIDs []string
}

package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists whole Artist aggregates. GetByID reports a missing
// artist with ErrArtistNotFound.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)
	GetAll(ctx context.Context) ([]*Artist, error)
	Add(ctx context.Context, artist *Artist) error
	Update(ctx context.Context, artist *Artist) error
	Delete(ctx context.Context, artist *Artist) error
}

package artists

import (
	"context"

	"github.com/google/uuid"

	"musiclibrary/internal/app"
	"musiclibrary/internal/catalog"
)

// CreateRequest carries the input for creating an artist.
type CreateRequest struct {
	Name string
}

// RenameRequest carries the new name of an artist.
type RenameRequest struct {
	Name string
}

// Filter narrows the list of returned artists.
type Filter struct {
	Name string
}

// Service provides artist-centric operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (app.ArtistDTO, error)
	List(ctx context.Context, filter Filter) ([]app.ArtistDTO, error)
	Get(ctx context.Context, id uuid.UUID) (app.ArtistDTO, error)
	Rename(ctx context.Context, id uuid.UUID, req RenameRequest) (app.ArtistDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo catalog.Repository
}

// New constructs an artist Service backed by the supplied repository.
func New(repo catalog.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (app.ArtistDTO, error) {
	if err := ctx.Err(); err != nil {
		return app.ArtistDTO{}, err
	}

	artist, err := catalog.NewArtist(req.Name)
	if err != nil {
		return app.ArtistDTO{}, err
	}
	if err := s.repo.Add(ctx, artist); err != nil {
		return app.ArtistDTO{}, err
	}
	return app.NewArtistDTO(artist), nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]app.ArtistDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	artists := make([]app.ArtistDTO, 0, len(all))
	for _, a := range all {
		if !catalog.NameContains(a.Name(), filter.Name) {
			continue
		}
		artists = append(artists, app.NewArtistDTO(a))
	}
	return artists, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (app.ArtistDTO, error) {
	if err := ctx.Err(); err != nil {
		return app.ArtistDTO{}, err
	}

	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return app.ArtistDTO{}, err
	}
	return app.NewArtistDTO(artist), nil
}

func (s *service) Rename(ctx context.Context, id uuid.UUID, req RenameRequest) (app.ArtistDTO, error) {
	if err := ctx.Err(); err != nil {
		return app.ArtistDTO{}, err
	}

	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return app.ArtistDTO{}, err
	}
	if err := artist.Rename(req.Name); err != nil {
		return app.ArtistDTO{}, err
	}
	if err := s.repo.Update(ctx, artist); err != nil {
		return app.ArtistDTO{}, err
	}
	return app.NewArtistDTO(artist), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, artist)
}

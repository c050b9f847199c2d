package albums

import (
	"context"

	"github.com/google/uuid"

	"musiclibrary/internal/app"
	"musiclibrary/internal/catalog"
)

// CreateRequest carries the input for adding an album to an artist.
type CreateRequest struct {
	ArtistID uuid.UUID
	Name     string
}

// Service coordinates album-related operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (app.AlbumDTO, error)
	Get(ctx context.Context, artistID, albumID uuid.UUID) (app.AlbumDTO, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]app.AlbumDTO, error)
	ListMusics(ctx context.Context, artistID, albumID uuid.UUID) ([]app.MusicDTO, error)
	Delete(ctx context.Context, artistID, albumID uuid.UUID) error
}

type service struct {
	repo catalog.Repository
}

// New constructs a Service backed by the provided repository.
func New(repo catalog.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (app.AlbumDTO, error) {
	if err := ctx.Err(); err != nil {
		return app.AlbumDTO{}, err
	}

	artist, err := s.repo.GetByID(ctx, req.ArtistID)
	if err != nil {
		return app.AlbumDTO{}, err
	}
	album, err := artist.AddAlbum(req.Name)
	if err != nil {
		return app.AlbumDTO{}, err
	}
	if err := s.repo.Update(ctx, artist); err != nil {
		return app.AlbumDTO{}, err
	}
	return app.NewAlbumDTO(album), nil
}

func (s *service) Get(ctx context.Context, artistID, albumID uuid.UUID) (app.AlbumDTO, error) {
	if err := ctx.Err(); err != nil {
		return app.AlbumDTO{}, err
	}

	album, err := s.album(ctx, artistID, albumID)
	if err != nil {
		return app.AlbumDTO{}, err
	}
	return app.NewAlbumDTO(album), nil
}

func (s *service) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]app.AlbumDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return app.AlbumDTOs(artist.Albums()), nil
}

func (s *service) ListMusics(ctx context.Context, artistID, albumID uuid.UUID) ([]app.MusicDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	album, err := s.album(ctx, artistID, albumID)
	if err != nil {
		return nil, err
	}
	return app.MusicDTOs(album.Musics()), nil
}

func (s *service) Delete(ctx context.Context, artistID, albumID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return err
	}
	if err := artist.RemoveAlbum(albumID); err != nil {
		return err
	}
	return s.repo.Update(ctx, artist)
}

func (s *service) album(ctx context.Context, artistID, albumID uuid.UUID) (*catalog.Album, error) {
	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return artist.Album(albumID)
}

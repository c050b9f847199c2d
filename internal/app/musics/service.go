package musics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"musiclibrary/internal/app"
	"musiclibrary/internal/catalog"
)

// CreateRequest carries the input for adding a music to an artist.
type CreateRequest struct {
	ArtistID uuid.UUID
	Name     string
	Duration time.Duration
}

// AlbumMembershipRequest identifies a music and one of its artist's albums.
type AlbumMembershipRequest struct {
	ArtistID uuid.UUID
	AlbumID  uuid.UUID
	MusicID  uuid.UUID
}

// Service coordinates music-related operations, including album membership.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (app.MusicDTO, error)
	Get(ctx context.Context, artistID, musicID uuid.UUID) (app.MusicDTO, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]app.MusicDTO, error)
	AddToAlbum(ctx context.Context, req AlbumMembershipRequest) (app.AlbumDTO, error)
	RemoveFromAlbum(ctx context.Context, req AlbumMembershipRequest) (app.AlbumDTO, error)
	Delete(ctx context.Context, artistID, musicID uuid.UUID) error
}

type service struct {
	repo catalog.Repository
}

// New constructs a Service backed by the provided repository.
func New(repo catalog.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (app.MusicDTO, error) {
	if err := ctx.Err(); err != nil {
		return app.MusicDTO{}, err
	}

	artist, err := s.repo.GetByID(ctx, req.ArtistID)
	if err != nil {
		return app.MusicDTO{}, err
	}
	music, err := artist.AddMusic(req.Name, req.Duration)
	if err != nil {
		return app.MusicDTO{}, err
	}
	if err := s.repo.Update(ctx, artist); err != nil {
		return app.MusicDTO{}, err
	}
	return app.NewMusicDTO(music), nil
}

func (s *service) Get(ctx context.Context, artistID, musicID uuid.UUID) (app.MusicDTO, error) {
	if err := ctx.Err(); err != nil {
		return app.MusicDTO{}, err
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return app.MusicDTO{}, err
	}
	music, err := artist.Music(musicID)
	if err != nil {
		return app.MusicDTO{}, err
	}
	return app.NewMusicDTO(music), nil
}

func (s *service) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]app.MusicDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return app.MusicDTOs(artist.Musics()), nil
}

func (s *service) AddToAlbum(ctx context.Context, req AlbumMembershipRequest) (app.AlbumDTO, error) {
	return s.changeMembership(ctx, req, (*catalog.Artist).AddMusicToAlbum)
}

func (s *service) RemoveFromAlbum(ctx context.Context, req AlbumMembershipRequest) (app.AlbumDTO, error) {
	return s.changeMembership(ctx, req, (*catalog.Artist).RemoveMusicFromAlbum)
}

func (s *service) Delete(ctx context.Context, artistID, musicID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return err
	}
	if err := artist.RemoveMusic(musicID); err != nil {
		return err
	}
	return s.repo.Update(ctx, artist)
}

func (s *service) changeMembership(
	ctx context.Context,
	req AlbumMembershipRequest,
	op func(a *catalog.Artist, albumID, musicID uuid.UUID) error,
) (app.AlbumDTO, error) {
	if err := ctx.Err(); err != nil {
		return app.AlbumDTO{}, err
	}

	artist, err := s.repo.GetByID(ctx, req.ArtistID)
	if err != nil {
		return app.AlbumDTO{}, err
	}
	if err := op(artist, req.AlbumID, req.MusicID); err != nil {
		return app.AlbumDTO{}, err
	}
	if err := s.repo.Update(ctx, artist); err != nil {
		return app.AlbumDTO{}, err
	}

	album, err := artist.Album(req.AlbumID)
	if err != nil {
		return app.AlbumDTO{}, err
	}
	return app.NewAlbumDTO(album), nil
}

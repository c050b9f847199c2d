// Package app holds the read models shared by the application services.
package app

import (
	"time"

	"github.com/google/uuid"

	"musiclibrary/internal/catalog"
)

// ArtistDTO is the read model of an artist.
type ArtistDTO struct {
	ID         uuid.UUID
	Name       string
	AlbumCount int
	MusicCount int
}

// AlbumDTO is the read model of an album. Duration is the sum of its musics.
type AlbumDTO struct {
	ID         uuid.UUID
	ArtistID   uuid.UUID
	Name       string
	Duration   time.Duration
	MusicCount int
}

// MusicDTO is the read model of a music.
type MusicDTO struct {
	ID       uuid.UUID
	ArtistID uuid.UUID
	Name     string
	Duration time.Duration
}

func NewArtistDTO(a *catalog.Artist) ArtistDTO {
	return ArtistDTO{
		ID:         a.ID(),
		Name:       a.Name(),
		AlbumCount: len(a.Albums()),
		MusicCount: len(a.Musics()),
	}
}

func NewAlbumDTO(al *catalog.Album) AlbumDTO {
	return AlbumDTO{
		ID:         al.ID(),
		ArtistID:   al.ArtistID(),
		Name:       al.Name(),
		Duration:   al.Duration(),
		MusicCount: len(al.MusicIDs()),
	}
}

func NewMusicDTO(m *catalog.Music) MusicDTO {
	return MusicDTO{
		ID:       m.ID(),
		ArtistID: m.ArtistID(),
		Name:     m.Name(),
		Duration: m.Duration(),
	}
}

// AlbumDTOs maps albums in order.
func AlbumDTOs(albums []*catalog.Album) []AlbumDTO {
	out := make([]AlbumDTO, 0, len(albums))
	for _, al := range albums {
		out = append(out, NewAlbumDTO(al))
	}
	return out
}

// MusicDTOs maps musics in order.
func MusicDTOs(musics []*catalog.Music) []MusicDTO {
	out := make([]MusicDTO, 0, len(musics))
	for _, m := range musics {
		out = append(out, NewMusicDTO(m))
	}
	return out
}

package catalog

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Album groups musics of its artist. Membership is kept as music ids; the
// musics themselves live in the owning Artist.
type Album struct {
	id       uuid.UUID
	artistID uuid.UUID
	name     string
	musicIDs []uuid.UUID

	// owner is a non-owning back reference used to resolve member musics.
	// RemoveAlbum clears it.
	owner *Artist
}

func (al *Album) ID() uuid.UUID       { return al.id }
func (al *Album) ArtistID() uuid.UUID { return al.artistID }
func (al *Album) Name() string        { return al.name }

// MusicIDs returns the member music ids in insertion order.
func (al *Album) MusicIDs() []uuid.UUID {
	return slices.Clone(al.musicIDs)
}

// Musics resolves the album members through the owning artist. A removed
// album resolves nothing.
func (al *Album) Musics() []*Music {
	if al.owner == nil {
		return nil
	}
	musics := make([]*Music, 0, len(al.musicIDs))
	for _, id := range al.musicIDs {
		if m := al.owner.findMusic(id); m != nil {
			musics = append(musics, m)
		}
	}
	return musics
}

// Contains reports whether the music is a member of the album.
func (al *Album) Contains(musicID uuid.UUID) bool {
	return slices.Contains(al.musicIDs, musicID)
}

// Duration is the sum of the member musics' durations.
func (al *Album) Duration() time.Duration {
	var total time.Duration
	for _, m := range al.Musics() {
		total += m.duration
	}
	return total
}

func (al *Album) addMusic(music *Music) error {
	if al.Contains(music.id) {
		return ErrMusicAlreadyInAlbum
	}
	al.musicIDs = append(al.musicIDs, music.id)
	return nil
}

func (al *Album) removeMusic(musicID uuid.UUID) error {
	idx := slices.Index(al.musicIDs, musicID)
	if idx < 0 {
		return ErrMusicNotFound
	}
	al.musicIDs = slices.Delete(al.musicIDs, idx, idx+1)
	return nil
}

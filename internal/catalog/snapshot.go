package catalog

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the plain-data form of an Artist aggregate. Repositories persist
// snapshots and rebuild artists from them with Restore.
type Snapshot struct {
	ID      uuid.UUID
	Name    string
	Version int
	Albums  []AlbumSnapshot
	Musics  []MusicSnapshot
}

// AlbumSnapshot holds an album and its member music ids in order.
type AlbumSnapshot struct {
	ID       uuid.UUID
	Name     string
	MusicIDs []uuid.UUID
}

// MusicSnapshot holds a single music.
type MusicSnapshot struct {
	ID       uuid.UUID
	Name     string
	Duration time.Duration
}

// Snapshot copies the aggregate state. The result shares no memory with a.
func (a *Artist) Snapshot() Snapshot {
	s := Snapshot{
		ID:      a.id,
		Name:    a.name,
		Version: a.version,
		Albums:  make([]AlbumSnapshot, 0, len(a.albums)),
		Musics:  make([]MusicSnapshot, 0, len(a.musics)),
	}
	for _, al := range a.albums {
		s.Albums = append(s.Albums, AlbumSnapshot{
			ID:       al.id,
			Name:     al.name,
			MusicIDs: slices.Clone(al.musicIDs),
		})
	}
	for _, m := range a.musics {
		s.Musics = append(s.Musics, MusicSnapshot{ID: m.id, Name: m.name, Duration: m.duration})
	}
	return s
}

// Restore rebuilds an Artist from a snapshot, checking every aggregate
// invariant on the way so corrupt stored state is rejected instead of loaded.
func Restore(s Snapshot) (*Artist, error) {
	if s.ID == uuid.Nil {
		return nil, validationf("restore artist: missing id")
	}
	name, err := normalizeName("artist's", s.Name)
	if err != nil {
		return nil, fmt.Errorf("restore artist %s: %w", s.ID, err)
	}

	a := &Artist{id: s.ID, name: name, version: s.Version}

	musicKeys := make(map[string]struct{}, len(s.Musics))
	for _, ms := range s.Musics {
		m, err := newMusic(a.id, ms.Name, ms.Duration)
		if err != nil {
			return nil, fmt.Errorf("restore music %s: %w", ms.ID, err)
		}
		key := nameKey(m.name)
		if _, dup := musicKeys[key]; dup {
			return nil, fmt.Errorf("restore music %s: %w", ms.ID, conflictf("music '%s' already exists", m.name))
		}
		if ms.ID == uuid.Nil || a.findMusic(ms.ID) != nil {
			return nil, validationf("restore music %q: invalid or duplicate id", m.name)
		}
		musicKeys[key] = struct{}{}
		m.id = ms.ID
		a.musics = append(a.musics, m)
	}

	albumKeys := make(map[string]struct{}, len(s.Albums))
	for _, as := range s.Albums {
		albumName, err := normalizeName("album", as.Name)
		if err != nil {
			return nil, fmt.Errorf("restore album %s: %w", as.ID, err)
		}
		key := nameKey(albumName)
		if _, dup := albumKeys[key]; dup {
			return nil, fmt.Errorf("restore album %s: %w", as.ID, conflictf("album '%s' already exists", albumName))
		}
		if as.ID == uuid.Nil || a.findAlbum(as.ID) != nil {
			return nil, validationf("restore album %q: invalid or duplicate id", albumName)
		}
		albumKeys[key] = struct{}{}

		album := &Album{id: as.ID, artistID: a.id, name: albumName, owner: a}
		for _, musicID := range as.MusicIDs {
			music := a.findMusic(musicID)
			if music == nil {
				return nil, fmt.Errorf("restore album %s: %w", as.ID, ErrMusicNotFound)
			}
			if err := album.addMusic(music); err != nil {
				return nil, fmt.Errorf("restore album %s: %w", as.ID, err)
			}
		}
		a.albums = append(a.albums, album)
	}

	return a, nil
}

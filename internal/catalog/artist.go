package catalog

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Artist is the aggregate root of the catalog. Albums and musics are created,
// linked and removed only through its methods so the naming and membership
// invariants hold for the whole aggregate.
type Artist struct {
	id      uuid.UUID
	name    string
	version int

	albums []*Album
	musics []*Music
}

// NewArtist creates an artist with a fresh identity.
func NewArtist(name string) (*Artist, error) {
	name, err := normalizeName("artist's", name)
	if err != nil {
		return nil, err
	}
	return &Artist{id: uuid.New(), name: name}, nil
}

func (a *Artist) ID() uuid.UUID { return a.id }
func (a *Artist) Name() string  { return a.name }

// Version is the optimistic concurrency counter assigned by the repository.
func (a *Artist) Version() int { return a.version }

// SetVersion records the version a repository persisted the aggregate under.
func (a *Artist) SetVersion(v int) { a.version = v }

// Albums returns the artist's albums in creation order.
func (a *Artist) Albums() []*Album { return slices.Clone(a.albums) }

// Musics returns the artist's musics in creation order.
func (a *Artist) Musics() []*Music { return slices.Clone(a.musics) }

// Rename replaces the artist's name.
func (a *Artist) Rename(name string) error {
	name, err := normalizeName("artist's", name)
	if err != nil {
		return err
	}
	if sameName(a.name, name) {
		return conflictf("the artist already has the name '%s'", name)
	}
	a.name = name
	return nil
}

// Album looks up an album by id.
func (a *Artist) Album(id uuid.UUID) (*Album, error) {
	if al := a.findAlbum(id); al != nil {
		return al, nil
	}
	return nil, ErrAlbumNotFound
}

// Music looks up a music by id.
func (a *Artist) Music(id uuid.UUID) (*Music, error) {
	if m := a.findMusic(id); m != nil {
		return m, nil
	}
	return nil, ErrMusicNotFound
}

// AddAlbum creates an empty album owned by the artist.
func (a *Artist) AddAlbum(name string) (*Album, error) {
	name, err := normalizeName("album", name)
	if err != nil {
		return nil, err
	}
	for _, al := range a.albums {
		if sameName(al.name, name) {
			return nil, conflictf("album '%s' already exists", name)
		}
	}

	album := &Album{id: uuid.New(), artistID: a.id, name: name, owner: a}
	a.albums = append(a.albums, album)
	return album, nil
}

// RemoveAlbum deletes an album together with its membership links. The
// linked musics stay with the artist.
func (a *Artist) RemoveAlbum(albumID uuid.UUID) error {
	idx := slices.IndexFunc(a.albums, func(al *Album) bool { return al.id == albumID })
	if idx < 0 {
		return ErrAlbumNotFound
	}
	a.albums[idx].owner = nil
	a.albums = slices.Delete(a.albums, idx, idx+1)
	return nil
}

// AddMusic creates a music owned by the artist.
func (a *Artist) AddMusic(name string, duration time.Duration) (*Music, error) {
	music, err := newMusic(a.id, name, duration)
	if err != nil {
		return nil, err
	}
	for _, m := range a.musics {
		if sameName(m.name, music.name) {
			return nil, conflictf("music '%s' already exists", music.name)
		}
	}

	a.musics = append(a.musics, music)
	return music, nil
}

// RemoveMusic deletes a music that is not linked to any album.
func (a *Artist) RemoveMusic(musicID uuid.UUID) error {
	idx := slices.IndexFunc(a.musics, func(m *Music) bool { return m.id == musicID })
	if idx < 0 {
		return ErrMusicNotFound
	}
	if len(a.AlbumsContaining(musicID)) > 0 {
		return ErrMusicInAlbum
	}
	a.musics = slices.Delete(a.musics, idx, idx+1)
	return nil
}

// AddMusicToAlbum links one of the artist's musics to one of its albums.
func (a *Artist) AddMusicToAlbum(albumID, musicID uuid.UUID) error {
	album, err := a.Album(albumID)
	if err != nil {
		return err
	}
	music, err := a.Music(musicID)
	if err != nil {
		return err
	}
	return album.addMusic(music)
}

// RemoveMusicFromAlbum unlinks a music from an album.
func (a *Artist) RemoveMusicFromAlbum(albumID, musicID uuid.UUID) error {
	album, err := a.Album(albumID)
	if err != nil {
		return err
	}
	return album.removeMusic(musicID)
}

// AlbumsContaining lists the albums the music is linked to.
func (a *Artist) AlbumsContaining(musicID uuid.UUID) []*Album {
	var albums []*Album
	for _, al := range a.albums {
		if al.Contains(musicID) {
			albums = append(albums, al)
		}
	}
	return albums
}

func (a *Artist) findAlbum(id uuid.UUID) *Album {
	for _, al := range a.albums {
		if al.id == id {
			return al
		}
	}
	return nil
}

func (a *Artist) findMusic(id uuid.UUID) *Music {
	for _, m := range a.musics {
		if m.id == id {
			return m
		}
	}
	return nil
}

package musics

import (
	"context"
	"errors"
	"testing"
	"time"

	"musiclibrary/internal/app/albums"
	"musiclibrary/internal/app/artists"
	"musiclibrary/internal/catalog"
	"musiclibrary/internal/store"
)

type recordingRepo struct {
	*store.Memory
	updates int
}

func (r *recordingRepo) Update(ctx context.Context, a *catalog.Artist) error {
	r.updates++
	return r.Memory.Update(ctx, a)
}

func TestCreateMusic(t *testing.T) {
	repo := &recordingRepo{Memory: store.NewMemory()}
	svc := New(repo)
	ctx := context.Background()

	artist, _ := artists.New(repo).Create(ctx, artists.CreateRequest{Name: "Metallica"})

	tests := []struct {
		name     string
		duration time.Duration
		want     error
	}{
		{name: "Orion", duration: 507 * time.Second},
		{name: "orion", duration: time.Second, want: catalog.ErrConflict},
		{name: "", duration: time.Second, want: catalog.ErrValidation},
		{name: "Damage, Inc.", duration: 0, want: catalog.ErrValidation},
	}
	for _, tc := range tests {
		_, err := svc.Create(ctx, CreateRequest{ArtistID: artist.ID, Name: tc.name, Duration: tc.duration})
		if tc.want == nil && err != nil {
			t.Fatalf("Create(%q): %v", tc.name, err)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Fatalf("Create(%q): expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if repo.updates != 1 {
		t.Fatalf("expected only the successful create to persist, got %d updates", repo.updates)
	}

	listed, err := svc.ListByArtist(ctx, artist.ID)
	if err != nil {
		t.Fatalf("ListByArtist: %v", err)
	}
	if len(listed) != 1 || listed[0].Duration != 507*time.Second {
		t.Fatalf("unexpected musics %+v", listed)
	}
}

func TestMetallicaWalkthrough(t *testing.T) {
	repo := &recordingRepo{Memory: store.NewMemory()}
	artistSvc := artists.New(repo)
	albumSvc := albums.New(repo)
	svc := New(repo)
	ctx := context.Background()

	artist, err := artistSvc.Create(ctx, artists.CreateRequest{Name: "Metallica"})
	if err != nil {
		t.Fatalf("create artist: %v", err)
	}
	album, err := albumSvc.Create(ctx, albums.CreateRequest{ArtistID: artist.ID, Name: "Master of Puppets"})
	if err != nil {
		t.Fatalf("create album: %v", err)
	}
	battery, err := svc.Create(ctx, CreateRequest{ArtistID: artist.ID, Name: "Battery", Duration: 331 * time.Second})
	if err != nil {
		t.Fatalf("create music: %v", err)
	}
	master, err := svc.Create(ctx, CreateRequest{ArtistID: artist.ID, Name: "Master of Puppets", Duration: 387 * time.Second})
	if err != nil {
		t.Fatalf("create music: %v", err)
	}

	for _, id := range []AlbumMembershipRequest{
		{ArtistID: artist.ID, AlbumID: album.ID, MusicID: battery.ID},
		{ArtistID: artist.ID, AlbumID: album.ID, MusicID: master.ID},
	} {
		if _, err := svc.AddToAlbum(ctx, id); err != nil {
			t.Fatalf("AddToAlbum: %v", err)
		}
	}

	got, err := albumSvc.Get(ctx, artist.ID, album.ID)
	if err != nil {
		t.Fatalf("get album: %v", err)
	}
	if got.Duration != 718*time.Second {
		t.Fatalf("expected 718s, got %s", got.Duration)
	}

	membership := AlbumMembershipRequest{ArtistID: artist.ID, AlbumID: album.ID, MusicID: battery.ID}
	if _, err := svc.AddToAlbum(ctx, membership); !errors.Is(err, catalog.ErrMusicAlreadyInAlbum) {
		t.Fatalf("expected ErrMusicAlreadyInAlbum, got %v", err)
	}

	before := repo.updates
	if err := svc.Delete(ctx, artist.ID, battery.ID); !errors.Is(err, catalog.ErrMusicInAlbum) {
		t.Fatalf("expected ErrMusicInAlbum, got %v", err)
	}
	if repo.updates != before {
		t.Fatalf("blocked delete must not persist")
	}

	updated, err := svc.RemoveFromAlbum(ctx, membership)
	if err != nil {
		t.Fatalf("RemoveFromAlbum: %v", err)
	}
	if updated.Duration != 387*time.Second {
		t.Fatalf("expected 387s after removal, got %s", updated.Duration)
	}
	if _, err := svc.RemoveFromAlbum(ctx, membership); !errors.Is(err, catalog.ErrMusicNotFound) {
		t.Fatalf("expected ErrMusicNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, artist.ID, battery.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, artist.ID, battery.ID); !errors.Is(err, catalog.ErrMusicNotFound) {
		t.Fatalf("expected ErrMusicNotFound, got %v", err)
	}
}

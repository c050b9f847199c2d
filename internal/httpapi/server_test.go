package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"musiclibrary/internal/app"
	"musiclibrary/internal/app/albums"
	"musiclibrary/internal/app/artists"
	"musiclibrary/internal/app/musics"
	"musiclibrary/internal/catalog"
	"musiclibrary/internal/store"
)

type stubArtistService struct {
	artists.Service
	getErr     error
	lastFilter artists.Filter
}

func (s *stubArtistService) Get(ctx context.Context, id uuid.UUID) (app.ArtistDTO, error) {
	if s.getErr != nil {
		return app.ArtistDTO{}, s.getErr
	}
	return app.ArtistDTO{ID: id, Name: "Metallica"}, nil
}

func (s *stubArtistService) List(ctx context.Context, filter artists.Filter) ([]app.ArtistDTO, error) {
	s.lastFilter = filter
	return []app.ArtistDTO{{ID: uuid.New(), Name: "Metallica"}}, nil
}

func newTestServer() http.Handler {
	repo := store.NewMemory()
	return New(artists.New(repo), albums.New(repo), musics.New(repo)).Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "not found", err: catalog.ErrArtistNotFound, wantStatus: http.StatusNotFound, wantBody: "artist not found"},
		{name: "validation", err: &catalog.Error{Kind: catalog.KindValidation, Msg: "bad"}, wantStatus: http.StatusBadRequest, wantBody: "bad"},
		{name: "conflict", err: store.ErrConcurrentUpdate, wantStatus: http.StatusConflict, wantBody: "modified by another request"},
		{name: "internal", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantBody: "internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := New(&stubArtistService{getErr: tc.err}, nil, nil).Routes()
			rec := do(t, h, http.MethodGet, "/api/v1/artists/"+uuid.NewString(), "")

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			body := decode[errorResponse](t, rec)
			if !strings.Contains(body.Error, tc.wantBody) {
				t.Fatalf("expected error containing %q, got %q", tc.wantBody, body.Error)
			}
		})
	}
}

func TestBadRequests(t *testing.T) {
	h := newTestServer()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "bad artist id", method: http.MethodGet, path: "/api/v1/artists/not-a-uuid", want: http.StatusBadRequest},
		{name: "bad json", method: http.MethodPost, path: "/api/v1/artists", body: "{", want: http.StatusBadRequest},
		{name: "blank name", method: http.MethodPost, path: "/api/v1/artists", body: `{"name":"  "}`, want: http.StatusBadRequest},
		{name: "unknown artist", method: http.MethodGet, path: "/api/v1/artists/" + uuid.NewString() + "/albums", want: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPost, path: "/health", want: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/labels", want: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, tc.method, tc.path, tc.body)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestListArtistsPassesNameFilter(t *testing.T) {
	stub := &stubArtistService{}
	h := New(stub, nil, nil).Routes()

	rec := do(t, h, http.MethodGet, "/api/v1/artists?name=metal", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastFilter.Name != "metal" {
		t.Fatalf("expected filter to be forwarded, got %q", stub.lastFilter.Name)
	}
}

func TestCreateMusicRejectsOverflowingDuration(t *testing.T) {
	h := newTestServer()

	rec := do(t, h, http.MethodPost, "/api/v1/artists", `{"name":"Metallica"}`)
	artist := decode[artistResponse](t, rec)
	path := "/api/v1/artists/" + artist.ID.String() + "/musics"

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "wraps to zero", body: `{"name":"Orion","durationSeconds":18446744074}`, want: http.StatusBadRequest},
		{name: "max int64", body: `{"name":"Orion","durationSeconds":9223372036854775807}`, want: http.StatusBadRequest},
		{name: "just over the limit", body: `{"name":"Orion","durationSeconds":9223372037}`, want: http.StatusBadRequest},
		{name: "largest allowed", body: `{"name":"Orion","durationSeconds":9223372036}`, want: http.StatusCreated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, path, tc.body)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, rec.Code, rec.Body.String())
			}
		})
	}

	rec = do(t, h, http.MethodGet, path, "")
	listed := decode[struct {
		Musics []musicResponse `json:"musics"`
	}](t, rec)
	if len(listed.Musics) != 1 || listed.Musics[0].DurationSeconds != 9223372036 {
		t.Fatalf("expected only the in-range music to be stored, got %+v", listed.Musics)
	}
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogFlow(t *testing.T) {
	h := newTestServer()

	rec := do(t, h, http.MethodPost, "/api/v1/artists", `{"name":"Metallica"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create artist: expected 201, got %d", rec.Code)
	}
	artist := decode[artistResponse](t, rec)
	if rec.Header().Get("Location") != "/api/v1/artists/"+artist.ID.String() {
		t.Fatalf("unexpected Location %q", rec.Header().Get("Location"))
	}
	base := "/api/v1/artists/" + artist.ID.String()

	rec = do(t, h, http.MethodPost, base+"/albums", `{"name":"Master of Puppets"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create album: expected 201, got %d", rec.Code)
	}
	album := decode[albumResponse](t, rec)

	rec = do(t, h, http.MethodPost, base+"/albums", `{"name":"MASTER OF PUPPETS"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate album: expected 409, got %d", rec.Code)
	}

	var musicIDs []uuid.UUID
	for _, body := range []string{
		`{"name":"Battery","durationSeconds":331}`,
		`{"name":"Master of Puppets","durationSeconds":387}`,
	} {
		rec = do(t, h, http.MethodPost, base+"/musics", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create music: expected 201, got %d (%s)", rec.Code, rec.Body.String())
		}
		musicIDs = append(musicIDs, decode[musicResponse](t, rec).ID)
	}

	rec = do(t, h, http.MethodPost, base+"/musics", `{"name":"Orion","durationSeconds":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("zero duration: expected 400, got %d", rec.Code)
	}

	albumPath := base + "/albums/" + album.ID.String()
	for _, id := range musicIDs {
		rec = do(t, h, http.MethodPut, albumPath+"/musics/"+id.String(), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("add to album: expected 200, got %d", rec.Code)
		}
	}

	rec = do(t, h, http.MethodPut, albumPath+"/musics/"+musicIDs[0].String(), "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("add twice: expected 409, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, albumPath, "")
	if got := decode[albumResponse](t, rec); got.DurationSeconds != 718 || got.MusicCount != 2 {
		t.Fatalf("expected 718s over 2 musics, got %+v", got)
	}

	rec = do(t, h, http.MethodGet, albumPath+"/musics", "")
	listed := decode[struct {
		Musics []musicResponse `json:"musics"`
	}](t, rec)
	if len(listed.Musics) != 2 || listed.Musics[0].Name != "Battery" {
		t.Fatalf("unexpected album musics %+v", listed.Musics)
	}

	musicPath := base + "/musics/" + musicIDs[0].String()
	rec = do(t, h, http.MethodDelete, musicPath, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("delete linked music: expected 409, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodDelete, albumPath+"/musics/"+musicIDs[0].String(), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("remove from album: expected 204, got %d", rec.Code)
	}
	rec = do(t, h, http.MethodDelete, musicPath, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete music: expected 204, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPut, base, `{"name":"metallica"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("rename to same: expected 409, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, base, "")
	if got := decode[artistResponse](t, rec); got.AlbumCount != 1 || got.MusicCount != 1 {
		t.Fatalf("unexpected artist counts %+v", got)
	}

	rec = do(t, h, http.MethodDelete, base, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete artist: expected 204, got %d", rec.Code)
	}
	rec = do(t, h, http.MethodGet, base, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("deleted artist: expected 404, got %d", rec.Code)
	}
}

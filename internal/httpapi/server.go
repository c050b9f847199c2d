package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"musiclibrary/internal/app"
	"musiclibrary/internal/app/albums"
	"musiclibrary/internal/app/artists"
	"musiclibrary/internal/app/musics"
	"musiclibrary/internal/catalog"
	"musiclibrary/internal/logging"
)

// ArtistService describes artist catalogue workflows.
type ArtistService interface {
	Create(ctx context.Context, req artists.CreateRequest) (app.ArtistDTO, error)
	List(ctx context.Context, filter artists.Filter) ([]app.ArtistDTO, error)
	Get(ctx context.Context, id uuid.UUID) (app.ArtistDTO, error)
	Rename(ctx context.Context, id uuid.UUID, req artists.RenameRequest) (app.ArtistDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlbumService exposes album-specific workflows.
type AlbumService interface {
	Create(ctx context.Context, req albums.CreateRequest) (app.AlbumDTO, error)
	Get(ctx context.Context, artistID, albumID uuid.UUID) (app.AlbumDTO, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]app.AlbumDTO, error)
	ListMusics(ctx context.Context, artistID, albumID uuid.UUID) ([]app.MusicDTO, error)
	Delete(ctx context.Context, artistID, albumID uuid.UUID) error
}

// MusicService coordinates track-level operations.
type MusicService interface {
	Create(ctx context.Context, req musics.CreateRequest) (app.MusicDTO, error)
	Get(ctx context.Context, artistID, musicID uuid.UUID) (app.MusicDTO, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]app.MusicDTO, error)
	AddToAlbum(ctx context.Context, req musics.AlbumMembershipRequest) (app.AlbumDTO, error)
	RemoveFromAlbum(ctx context.Context, req musics.AlbumMembershipRequest) (app.AlbumDTO, error)
	Delete(ctx context.Context, artistID, musicID uuid.UUID) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	artists ArtistService
	albums  AlbumService
	musics  MusicService
}

// New configures a Server with the given services.
func New(artists ArtistService, albums AlbumService, musics MusicService) *Server {
	return &Server{artists: artists, albums: albums, musics: musics}
}

// Routes exposes the HTTP handlers for the catalog.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "route not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/artists", s.handleListArtists).Methods(http.MethodGet)
	api.HandleFunc("/artists", s.handleCreateArtist).Methods(http.MethodPost)
	api.HandleFunc("/artists/{artistId}", s.handleGetArtist).Methods(http.MethodGet)
	api.HandleFunc("/artists/{artistId}", s.handleRenameArtist).Methods(http.MethodPut)
	api.HandleFunc("/artists/{artistId}", s.handleDeleteArtist).Methods(http.MethodDelete)

	api.HandleFunc("/artists/{artistId}/albums", s.handleListAlbums).Methods(http.MethodGet)
	api.HandleFunc("/artists/{artistId}/albums", s.handleCreateAlbum).Methods(http.MethodPost)
	api.HandleFunc("/artists/{artistId}/albums/{albumId}", s.handleGetAlbum).Methods(http.MethodGet)
	api.HandleFunc("/artists/{artistId}/albums/{albumId}", s.handleDeleteAlbum).Methods(http.MethodDelete)
	api.HandleFunc("/artists/{artistId}/albums/{albumId}/musics", s.handleListAlbumMusics).Methods(http.MethodGet)
	api.HandleFunc("/artists/{artistId}/albums/{albumId}/musics/{musicId}", s.handleAddMusicToAlbum).Methods(http.MethodPut)
	api.HandleFunc("/artists/{artistId}/albums/{albumId}/musics/{musicId}", s.handleRemoveMusicFromAlbum).Methods(http.MethodDelete)

	api.HandleFunc("/artists/{artistId}/musics", s.handleListMusics).Methods(http.MethodGet)
	api.HandleFunc("/artists/{artistId}/musics", s.handleCreateMusic).Methods(http.MethodPost)
	api.HandleFunc("/artists/{artistId}/musics/{musicId}", s.handleGetMusic).Methods(http.MethodGet)
	api.HandleFunc("/artists/{artistId}/musics/{musicId}", s.handleDeleteMusic).Methods(http.MethodDelete)

	return router
}

type errorResponse struct {
	Error string `json:"error"`
}

type artistResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	AlbumCount int       `json:"albumCount"`
	MusicCount int       `json:"musicCount"`
}

type albumResponse struct {
	ID              uuid.UUID `json:"id"`
	ArtistID        uuid.UUID `json:"artistId"`
	Name            string    `json:"name"`
	DurationSeconds int64     `json:"durationSeconds"`
	MusicCount      int       `json:"musicCount"`
}

type musicResponse struct {
	ID              uuid.UUID `json:"id"`
	ArtistID        uuid.UUID `json:"artistId"`
	Name            string    `json:"name"`
	DurationSeconds int64     `json:"durationSeconds"`
}

func toArtistResponse(dto app.ArtistDTO) artistResponse {
	return artistResponse{ID: dto.ID, Name: dto.Name, AlbumCount: dto.AlbumCount, MusicCount: dto.MusicCount}
}

func toAlbumResponse(dto app.AlbumDTO) albumResponse {
	return albumResponse{
		ID:              dto.ID,
		ArtistID:        dto.ArtistID,
		Name:            dto.Name,
		DurationSeconds: seconds(dto.Duration),
		MusicCount:      dto.MusicCount,
	}
}

func toMusicResponse(dto app.MusicDTO) musicResponse {
	return musicResponse{
		ID:              dto.ID,
		ArtistID:        dto.ArtistID,
		Name:            dto.Name,
		DurationSeconds: seconds(dto.Duration),
	}
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

// pathID parses the named uuid path variable, writing a 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + label + " id"})
		return uuid.Nil, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return false
	}
	return true
}

// writeError maps catalog error kinds onto HTTP statuses. Anything else is an
// internal failure and is logged rather than echoed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logging.WithContext(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

package httpapi

import (
	"math"
	"net/http"
	"time"

	"musiclibrary/internal/app"
	"musiclibrary/internal/app/musics"
)

// maxDurationSeconds is the largest duration that fits in a time.Duration.
const maxDurationSeconds = math.MaxInt64 / int64(time.Second)

type musicRequest struct {
	Name            string `json:"name"`
	DurationSeconds int64  `json:"durationSeconds"`
}

func toMusicResponses(list []app.MusicDTO) []musicResponse {
	resp := make([]musicResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, toMusicResponse(m))
	}
	return resp
}

func (s *Server) handleListMusics(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}

	list, err := s.musics.ListByArtist(r.Context(), artistID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Musics []musicResponse `json:"musics"`
	}{Musics: toMusicResponses(list)})
}

func (s *Server) handleCreateMusic(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}
	var req musicRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.DurationSeconds > maxDurationSeconds {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "durationSeconds is too large"})
		return
	}

	music, err := s.musics.Create(r.Context(), musics.CreateRequest{
		ArtistID: artistID,
		Name:     req.Name,
		Duration: time.Duration(req.DurationSeconds) * time.Second,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/artists/"+artistID.String()+"/musics/"+music.ID.String())
	writeJSON(w, http.StatusCreated, toMusicResponse(music))
}

func (s *Server) handleGetMusic(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}
	musicID, ok := pathID(w, r, "musicId", "music")
	if !ok {
		return
	}

	music, err := s.musics.Get(r.Context(), artistID, musicID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMusicResponse(music))
}

func (s *Server) handleDeleteMusic(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}
	musicID, ok := pathID(w, r, "musicId", "music")
	if !ok {
		return
	}

	if err := s.musics.Delete(r.Context(), artistID, musicID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package httpapi

import (
	"net/http"

	"musiclibrary/internal/app/artists"
)

type artistRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	list, err := s.artists.List(r.Context(), artists.Filter{Name: r.URL.Query().Get("name")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]artistResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toArtistResponse(a))
	}
	writeJSON(w, http.StatusOK, struct {
		Artists []artistResponse `json:"artists"`
	}{Artists: resp})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var req artistRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	artist, err := s.artists.Create(r.Context(), artists.CreateRequest{Name: req.Name})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/artists/"+artist.ID.String())
	writeJSON(w, http.StatusCreated, toArtistResponse(artist))
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArtistResponse(artist))
}

func (s *Server) handleRenameArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}
	var req artistRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	artist, err := s.artists.Rename(r.Context(), id, artists.RenameRequest{Name: req.Name})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArtistResponse(artist))
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}

	if err := s.artists.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

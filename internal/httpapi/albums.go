package httpapi

import (
	"net/http"

	"musiclibrary/internal/app/albums"
	"musiclibrary/internal/app/musics"
)

type albumRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}

	list, err := s.albums.ListByArtist(r.Context(), artistID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]albumResponse, 0, len(list))
	for _, al := range list {
		resp = append(resp, toAlbumResponse(al))
	}
	writeJSON(w, http.StatusOK, struct {
		Albums []albumResponse `json:"albums"`
	}{Albums: resp})
}

func (s *Server) handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}
	var req albumRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	album, err := s.albums.Create(r.Context(), albums.CreateRequest{ArtistID: artistID, Name: req.Name})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/artists/"+artistID.String()+"/albums/"+album.ID.String())
	writeJSON(w, http.StatusCreated, toAlbumResponse(album))
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}
	albumID, ok := pathID(w, r, "albumId", "album")
	if !ok {
		return
	}

	album, err := s.albums.Get(r.Context(), artistID, albumID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlbumResponse(album))
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}
	albumID, ok := pathID(w, r, "albumId", "album")
	if !ok {
		return
	}

	if err := s.albums.Delete(r.Context(), artistID, albumID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListAlbumMusics(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId", "artist")
	if !ok {
		return
	}
	albumID, ok := pathID(w, r, "albumId", "album")
	if !ok {
		return
	}

	list, err := s.albums.ListMusics(r.Context(), artistID, albumID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Musics []musicResponse `json:"musics"`
	}{Musics: toMusicResponses(list)})
}

func (s *Server) handleAddMusicToAlbum(w http.ResponseWriter, r *http.Request) {
	req, ok := membershipRequest(w, r)
	if !ok {
		return
	}

	album, err := s.musics.AddToAlbum(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlbumResponse(album))
}

func (s *Server) handleRemoveMusicFromAlbum(w http.ResponseWriter, r *http.Request) {
	req, ok := membershipRequest(w, r)
	if !ok {
		return
	}

	if _, err := s.musics.RemoveFromAlbum(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func membershipRequest(w http.ResponseWriter, r *http.Request) (musics.AlbumMembershipRequest, bool) {
	var req musics.AlbumMembershipRequest
	var ok bool
	if req.ArtistID, ok = pathID(w, r, "artistId", "artist"); !ok {
		return req, false
	}
	if req.AlbumID, ok = pathID(w, r, "albumId", "album"); !ok {
		return req, false
	}
	if req.MusicID, ok = pathID(w, r, "musicId", "music"); !ok {
		return req, false
	}
	return req, true
}

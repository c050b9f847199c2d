package main

import (
	"net/http"
	"strings"

	"musiclibrary/internal/app/albums"
	"musiclibrary/internal/app/artists"
	"musiclibrary/internal/app/musics"
	"musiclibrary/internal/catalog"
	"musiclibrary/internal/config"
	"musiclibrary/internal/http/middleware"
	"musiclibrary/internal/httpapi"
)

func newHTTPHandler(cfg *config.Config, repo catalog.Repository) http.Handler {
	artistSvc := artists.New(repo)
	albumSvc := albums.New(repo)
	musicSvc := musics.New(repo)

	var handler http.Handler = httpapi.New(artistSvc, albumSvc, musicSvc).Routes()
	handler = middleware.CORS(strings.Join(cfg.CORS.AllowedOrigins, ","))(handler)
	handler = middleware.Recovery()(handler)
	handler = middleware.RequestLogging()(handler)
	return handler
}

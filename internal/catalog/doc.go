// Package catalog holds the music library domain model: the Artist aggregate
// root with the albums and musics it owns, the error taxonomy returned by
// aggregate operations, and the repository contract used to persist artists.
package catalog

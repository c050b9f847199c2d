package catalog

import (
	"errors"
	"fmt"
)

// Broad classification sentinels. Every *Error matches exactly one of them
// through errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Kind is a coarse-grained categorization for catalog errors.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
)

var (
	// ErrArtistNotFound signals a missing artist aggregate.
	ErrArtistNotFound = &Error{Kind: KindNotFound, Msg: "artist not found"}
	// ErrAlbumNotFound signals a missing album within an artist.
	ErrAlbumNotFound = &Error{Kind: KindNotFound, Msg: "album not found"}
	// ErrMusicNotFound signals a missing music within an artist or album.
	ErrMusicNotFound = &Error{Kind: KindNotFound, Msg: "music not found"}
	// ErrMusicAlreadyInAlbum is returned when linking a music twice.
	ErrMusicAlreadyInAlbum = &Error{Kind: KindConflict, Msg: "music already added to album"}
	// ErrMusicInAlbum blocks removal of a music that is still linked to an album.
	ErrMusicInAlbum = &Error{Kind: KindConflict, Msg: "the music is part of an album and cannot be removed"}
)

// Error is the error type returned by aggregate operations.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Msg
}

// Is reports whether target is the broad sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrConflict:
		return e.Kind == KindConflict
	}
	return false
}

// IsKind helps callers classify errors without switching on sentinels.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

func validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

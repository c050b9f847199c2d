package catalog

import (
	"time"

	"github.com/google/uuid"
)

// DurationPrecision is the resolution music durations are kept at. Finer
// parts are truncated so every repository stores the same value.
const DurationPrecision = time.Millisecond

// Music is a track owned by an Artist. It can be linked to any number of the
// artist's albums without changing ownership.
type Music struct {
	id       uuid.UUID
	artistID uuid.UUID
	name     string
	duration time.Duration
}

func newMusic(artistID uuid.UUID, name string, duration time.Duration) (*Music, error) {
	name, err := normalizeName("music", name)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, validationf("the duration of the music cannot be equal to or less than zero")
	}
	duration = duration.Truncate(DurationPrecision)
	if duration <= 0 {
		return nil, validationf("the duration of the music cannot be shorter than %s", DurationPrecision)
	}
	return &Music{
		id:       uuid.New(),
		artistID: artistID,
		name:     name,
		duration: duration,
	}, nil
}

func (m *Music) ID() uuid.UUID           { return m.id }
func (m *Music) ArtistID() uuid.UUID     { return m.artistID }
func (m *Music) Name() string            { return m.name }
func (m *Music) Duration() time.Duration { return m.duration }

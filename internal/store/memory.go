package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"musiclibrary/internal/catalog"
)

// Memory keeps artist aggregates in-process. It stores snapshots, so callers
// never share memory with the repository.
type Memory struct {
	mu      sync.RWMutex
	artists map[uuid.UUID]catalog.Snapshot
	order   []uuid.UUID
}

// NewMemory returns an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{artists: make(map[uuid.UUID]catalog.Snapshot)}
}

// GetByID returns a fresh copy of the stored artist.
func (m *Memory) GetByID(_ context.Context, id uuid.UUID) (*catalog.Artist, error) {
	m.mu.RLock()
	snap, ok := m.artists[id]
	m.mu.RUnlock()

	if !ok {
		return nil, catalog.ErrArtistNotFound
	}
	return catalog.Restore(snap)
}

// GetAll returns every artist in insertion order.
func (m *Memory) GetAll(_ context.Context) ([]*catalog.Artist, error) {
	m.mu.RLock()
	snaps := make([]catalog.Snapshot, 0, len(m.order))
	for _, id := range m.order {
		snaps = append(snaps, m.artists[id])
	}
	m.mu.RUnlock()

	artists := make([]*catalog.Artist, 0, len(snaps))
	for _, snap := range snaps {
		a, err := catalog.Restore(snap)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, nil
}

// Add stores a new artist at version 1.
func (m *Memory) Add(_ context.Context, artist *catalog.Artist) error {
	if artist == nil {
		return errors.New("artist is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.artists[artist.ID()]; exists {
		return ErrArtistExists
	}

	snap := artist.Snapshot()
	snap.Version = 1
	m.artists[artist.ID()] = snap
	m.order = append(m.order, artist.ID())
	artist.SetVersion(snap.Version)
	return nil
}

// Update replaces the stored artist if nobody else wrote it since it was loaded.
func (m *Memory) Update(_ context.Context, artist *catalog.Artist) error {
	if artist == nil {
		return errors.New("artist is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.artists[artist.ID()]
	if !ok {
		return catalog.ErrArtistNotFound
	}
	if existing.Version != artist.Version() {
		return ErrConcurrentUpdate
	}

	snap := artist.Snapshot()
	snap.Version = existing.Version + 1
	m.artists[artist.ID()] = snap
	artist.SetVersion(snap.Version)
	return nil
}

// Delete removes the artist with everything it owns.
func (m *Memory) Delete(_ context.Context, artist *catalog.Artist) error {
	if artist == nil {
		return errors.New("artist is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.artists[artist.ID()]; !ok {
		return catalog.ErrArtistNotFound
	}
	delete(m.artists, artist.ID())
	for i, id := range m.order {
		if id == artist.ID() {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"musiclibrary/internal/catalog"
)

// GetByID loads an artist with all of its albums, musics and album links.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Artist, error) {
	snap := catalog.Snapshot{ID: id}
	err := s.db.QueryRowContext(ctx, `
		SELECT name, version
		FROM artists
		WHERE id = $1
	`, id).Scan(&snap.Name, &snap.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrArtistNotFound
		}
		return nil, fmt.Errorf("select artist: %w", err)
	}

	if err := loadChildren(ctx, s.db, &snap); err != nil {
		return nil, err
	}
	return catalog.Restore(snap)
}

// GetAll loads every artist ordered by name.
func (s *Store) GetAll(ctx context.Context) ([]*catalog.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, version
		FROM artists
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}

	var snaps []catalog.Snapshot
	for rows.Next() {
		var snap catalog.Snapshot
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Version); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	rows.Close()

	artists := make([]*catalog.Artist, 0, len(snaps))
	for i := range snaps {
		if err := loadChildren(ctx, s.db, &snaps[i]); err != nil {
			return nil, err
		}
		a, err := catalog.Restore(snaps[i])
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, nil
}

// Add inserts a new artist aggregate at version 1.
func (s *Store) Add(ctx context.Context, artist *catalog.Artist) error {
	snap := artist.Snapshot()
	snap.Version = 1

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO artists (id, name, version)
			VALUES ($1, $2, $3)
		`, snap.ID, snap.Name, snap.Version); err != nil {
			if isUniqueViolation(err) {
				return ErrArtistExists
			}
			return fmt.Errorf("insert artist: %w", err)
		}
		return insertChildren(ctx, tx, snap)
	})
	if err != nil {
		return err
	}

	artist.SetVersion(snap.Version)
	return nil
}

// Update rewrites the artist and its children if the stored version still
// matches the version the artist was loaded with.
func (s *Store) Update(ctx context.Context, artist *catalog.Artist) error {
	snap := artist.Snapshot()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE artists
			SET name = $1, version = version + 1
			WHERE id = $2 AND version = $3
		`, snap.Name, snap.ID, snap.Version)
		if err != nil {
			return fmt.Errorf("update artist: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update artist: %w", err)
		}
		if affected == 0 {
			return missingOrStale(ctx, tx, snap.ID)
		}

		if _, err := tx.ExecContext(ctx, `
			DELETE FROM albums
			WHERE artist_id = $1
		`, snap.ID); err != nil {
			return fmt.Errorf("delete albums: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM musics
			WHERE artist_id = $1
		`, snap.ID); err != nil {
			return fmt.Errorf("delete musics: %w", err)
		}

		return insertChildren(ctx, tx, snap)
	})
	if err != nil {
		return err
	}

	artist.SetVersion(snap.Version + 1)
	return nil
}

// Delete removes the artist; albums, musics and links cascade.
func (s *Store) Delete(ctx context.Context, artist *catalog.Artist) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM artists
		WHERE id = $1
	`, artist.ID())
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	if affected == 0 {
		return catalog.ErrArtistNotFound
	}
	return nil
}

func missingOrStale(ctx context.Context, q querier, id uuid.UUID) error {
	var one int
	err := q.QueryRowContext(ctx, `
		SELECT 1
		FROM artists
		WHERE id = $1
	`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.ErrArtistNotFound
		}
		return fmt.Errorf("lookup artist: %w", err)
	}
	return ErrConcurrentUpdate
}

func loadChildren(ctx context.Context, q querier, snap *catalog.Snapshot) error {
	if err := loadMusics(ctx, q, snap); err != nil {
		return err
	}
	if err := loadAlbums(ctx, q, snap); err != nil {
		return err
	}
	return loadAlbumMusics(ctx, q, snap)
}

func loadMusics(ctx context.Context, q querier, snap *catalog.Snapshot) error {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, duration_ms
		FROM musics
		WHERE artist_id = $1
		ORDER BY position ASC
	`, snap.ID)
	if err != nil {
		return fmt.Errorf("select musics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m  catalog.MusicSnapshot
			ms int64
		)
		if err := rows.Scan(&m.ID, &m.Name, &ms); err != nil {
			return fmt.Errorf("scan music: %w", err)
		}
		m.Duration = time.Duration(ms) * time.Millisecond
		snap.Musics = append(snap.Musics, m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate musics: %w", err)
	}
	return nil
}

func loadAlbums(ctx context.Context, q querier, snap *catalog.Snapshot) error {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name
		FROM albums
		WHERE artist_id = $1
		ORDER BY position ASC
	`, snap.ID)
	if err != nil {
		return fmt.Errorf("select albums: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var al catalog.AlbumSnapshot
		if err := rows.Scan(&al.ID, &al.Name); err != nil {
			return fmt.Errorf("scan album: %w", err)
		}
		snap.Albums = append(snap.Albums, al)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate albums: %w", err)
	}
	return nil
}

func loadAlbumMusics(ctx context.Context, q querier, snap *catalog.Snapshot) error {
	rows, err := q.QueryContext(ctx, `
		SELECT am.album_id, am.music_id
		FROM album_musics am
		JOIN albums a ON a.id = am.album_id
		WHERE a.artist_id = $1
		ORDER BY am.album_id, am.position ASC
	`, snap.ID)
	if err != nil {
		return fmt.Errorf("select album musics: %w", err)
	}
	defer rows.Close()

	index := make(map[uuid.UUID]int, len(snap.Albums))
	for i, al := range snap.Albums {
		index[al.ID] = i
	}

	for rows.Next() {
		var albumID, musicID uuid.UUID
		if err := rows.Scan(&albumID, &musicID); err != nil {
			return fmt.Errorf("scan album music: %w", err)
		}
		if i, ok := index[albumID]; ok {
			snap.Albums[i].MusicIDs = append(snap.Albums[i].MusicIDs, musicID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate album musics: %w", err)
	}
	return nil
}

func insertChildren(ctx context.Context, tx execer, snap catalog.Snapshot) error {
	for pos, m := range snap.Musics {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO musics (id, artist_id, name, duration_ms, position)
			VALUES ($1, $2, $3, $4, $5)
		`, m.ID, snap.ID, m.Name, m.Duration.Milliseconds(), pos); err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateName
			}
			return fmt.Errorf("insert music: %w", err)
		}
	}

	for pos, al := range snap.Albums {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO albums (id, artist_id, name, position)
			VALUES ($1, $2, $3, $4)
		`, al.ID, snap.ID, al.Name, pos); err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateName
			}
			return fmt.Errorf("insert album: %w", err)
		}

		for trackPos, musicID := range al.MusicIDs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO album_musics (album_id, music_id, position)
				VALUES ($1, $2, $3)
			`, al.ID, musicID, trackPos); err != nil {
				return fmt.Errorf("insert album music: %w", err)
			}
		}
	}

	return nil
}

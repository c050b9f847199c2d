package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"musiclibrary/internal/catalog"
)

var (
	// ErrArtistExists signals an Add for an id that is already stored.
	ErrArtistExists = &catalog.Error{Kind: catalog.KindConflict, Msg: "artist already exists"}
	// ErrConcurrentUpdate signals that the stored artist changed after it was loaded.
	ErrConcurrentUpdate = &catalog.Error{Kind: catalog.KindConflict, Msg: "artist was modified by another request"}
	// ErrDuplicateName is reported when the database rejects a name the aggregate accepted.
	ErrDuplicateName = &catalog.Error{Kind: catalog.KindConflict, Msg: "name already exists for this artist"}
)

// Store provides artist persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// withTx runs fn inside a transaction, committing only when fn succeeds.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

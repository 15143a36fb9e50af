package store

import (
	"context"
	"fmt"

	"github.com/avelasco/noteboard/internal/config"
	"github.com/avelasco/noteboard/internal/logger"
)

// Storages bundles the repositories backed by one shared PostgreSQL
// connection pool. The services layer depends on this struct instead of on
// the individual repository constructors.
type Storages struct {
	UserRepository
	BoardRepository
	NoteRepository

	db *DB
}

// NewStorages connects to PostgreSQL using the provided storage config,
// applies pending migrations, and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		BoardRepository: NewBoardRepository(db, log),
		NoteRepository:  NewNoteRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

package store

import (
	"context"

	"github.com/mjardin/docshare/internal/config"
	"github.com/mjardin/docshare/internal/logger"
)

// Storages aggregates every persistence backend the services depend on.
type Storages struct {
	UserRepository UserRepository
	FileRepository FileRepository
	BlobStorage    BlobStorage
}

// NewStorages connects to PostgreSQL, applies pending migrations, prepares
// the blob directory, and returns the wired repository set.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	blobs, err := NewBlobStorage(cfg.Files.UploadDir, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		FileRepository: NewFileRepository(db, logger),
		BlobStorage:    blobs,
	}, nil
}

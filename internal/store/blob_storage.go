package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mjardin/docshare/internal/logger"
)

// blobStorage is the filesystem implementation of [BlobStorage]. Uploaded
// document bytes live under a single root directory; the relational store
// only holds the path.
type blobStorage struct {
	root   string
	logger *logger.Logger
}

// NewBlobStorage constructs a filesystem-backed [BlobStorage] rooted at
// dir, creating the directory if it does not exist.
func NewBlobStorage(dir string, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating blob storage root: %w", err)
	}
	logger.Debug().Str("dir", dir).Msg("creating blob storage")

	return &blobStorage{root: dir, logger: logger}, nil
}

// Write stores everything read from r under a fresh storage name derived
// from the original filename. The write is all-or-nothing: any failure
// removes the partial file before returning, so the caller never creates a
// file record for bytes that were not fully persisted.
//
// The returned size is the byte count actually written, not a client claim.
func (b *blobStorage) Write(ctx context.Context, name string, r io.Reader) (string, int64, error) {
	log := logger.FromContext(ctx)

	path := filepath.Join(b.root, storageName(name))

	// O_EXCL backs up the uuid: a collision fails instead of overwriting.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		log.Err(err).Str("func", "*blobStorage.Write").Str("path", path).Msg("error: creating blob file")
		return "", 0, fmt.Errorf("creating blob file: %w", err)
	}

	size, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(path)
		log.Err(err).Str("func", "*blobStorage.Write").Str("path", path).Msg("error: writing blob file")
		return "", 0, fmt.Errorf("writing blob file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("closing blob file: %w", err)
	}

	return path, size, nil
}

// Open returns a reader over the stored blob.
func (b *blobStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("opening blob file: %w", err)
	}

	return f, nil
}

// Exists reports whether the blob is present on disk.
func (b *blobStorage) Exists(ctx context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// storageName builds a collision-resistant storage filename: a timestamp
// prefix for operator-friendly listing plus a uuid so that concurrent
// uploads of the same original name never contend.
func storageName(original string) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, string(os.PathSeparator), "_")

	return fmt.Sprintf("%s_%s_%s", time.Now().UTC().Format("20060102_150405"), uuid.NewString(), base)
}

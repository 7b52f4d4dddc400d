package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mjardin/docshare/internal/crypto"
	"github.com/mjardin/docshare/internal/logger"
	"github.com/mjardin/docshare/internal/store"
	"github.com/mjardin/docshare/internal/validators"
	"github.com/mjardin/docshare/models"
)

// fileService is the concrete implementation of FileService.
//
// Upload is a two-phase registration: the metadata row is inserted first with
// no link, the capability link is minted from the returned id, and the row is
// patched. A crash between the phases leaves a listable record with an empty
// link rather than a dangling link to nothing.
type fileService struct {
	fileRepository store.FileRepository
	blobs          store.BlobStorage
	linkCodec      crypto.LinkCodec
	validator      validators.Validator
	linkTTL        time.Duration
	logger         *logger.Logger
}

// NewFileService constructs a FileService over the given metadata repository,
// blob storage, and link codec. validator gates uploads; linkTTL bounds the
// lifetime of every minted download link.
func NewFileService(fileRepository store.FileRepository, blobs store.BlobStorage, linkCodec crypto.LinkCodec, validator validators.Validator, linkTTL time.Duration, logger *logger.Logger) FileService {
	return &fileService{
		fileRepository: fileRepository,
		blobs:          blobs,
		linkCodec:      linkCodec,
		validator:      validator,
		linkTTL:        linkTTL,
		logger:         logger,
	}
}

// Upload validates the document, stores its bytes, registers the metadata
// row, and patches it with a freshly minted capability link.
//
// Returns ErrUnsupportedFileType when either the filename extension or the
// declared content type falls outside the office-document allow-set. The
// blob is written before the record is inserted, so a record never points at
// bytes that were not fully stored.
func (f *fileService) Upload(ctx context.Context, uploaderID int64, filename, contentType string, r io.Reader) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	record := models.FileRecord{
		Filename:   filename,
		FileType:   contentType,
		UploadedBy: uploaderID,
	}

	if err := f.validator.Validate(ctx, record); err != nil {
		log.Debug().Err(err).Str("filename", filename).Str("content_type", contentType).Msg("upload rejected")
		return models.FileRecord{}, ErrUnsupportedFileType
	}

	path, size, err := f.blobs.Write(ctx, filename, r)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("storing uploaded bytes failed")
		return models.FileRecord{}, fmt.Errorf("storing uploaded bytes failed: %w", err)
	}

	record.FilePath = path
	record.FileSize = size

	created, err := f.fileRepository.CreateFile(ctx, record)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("file registration failed")
		return models.FileRecord{}, fmt.Errorf("file registration failed: %w", err)
	}

	link, err := f.linkCodec.Mint(created.FileID, time.Now(), f.linkTTL)
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("minting download link failed: %w", err)
	}

	if err := f.fileRepository.SetDownloadURL(ctx, created.FileID, link); err != nil {
		log.Err(err).Int64("id", created.FileID).Msg("patching download link failed")
		return models.FileRecord{}, fmt.Errorf("patching download link failed: %w", err)
	}
	created.DownloadURL = &link

	log.Info().
		Int64("id", created.FileID).
		Str("filename", created.Filename).
		Int64("size", created.FileSize).
		Msg("file uploaded")

	return created, nil
}

// ListAll returns every registered record with full fields, newest first.
func (f *fileService) ListAll(ctx context.Context) ([]models.FileRecord, error) {
	records, err := f.fileRepository.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing files failed: %w", err)
	}

	return records, nil
}

// ListClient returns the reduced client projection of every record, newest
// first. Internal fields (storage path, uploader, record id) are not exposed.
func (f *fileService) ListClient(ctx context.Context) ([]models.ClientFileView, error) {
	records, err := f.fileRepository.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing files failed: %w", err)
	}

	views := make([]models.ClientFileView, 0, len(records))
	for _, record := range records {
		views = append(views, record.ClientView())
	}

	return views, nil
}

// Download resolves a capability link to the stored document.
//
// Garbage links, expired links, and valid links naming a record that no
// longer resolves (unknown id or missing blob) all collapse to the same
// caller-visible errors: ErrInvalidOrExpiredLink for the first two,
// ErrFileNotFound for the rest. No probe distinguishes "expired" from
// "never existed" beyond that split, matching what the link holder could
// learn anyway from the expiry embedded in their own link.
func (f *fileService) Download(ctx context.Context, link string) (models.FileRecord, io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	fileID, ok := f.linkCodec.Verify(link, time.Now())
	if !ok {
		return models.FileRecord{}, nil, ErrInvalidOrExpiredLink
	}

	record, err := f.fileRepository.FindFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return models.FileRecord{}, nil, ErrFileNotFound
		}
		log.Err(err).Int64("id", fileID).Msg("file lookup failed")
		return models.FileRecord{}, nil, fmt.Errorf("file lookup failed: %w", err)
	}

	blob, err := f.blobs.Open(ctx, record.FilePath)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			log.Warn().Int64("id", fileID).Str("path", record.FilePath).Msg("record present but blob missing")
			return models.FileRecord{}, nil, ErrFileNotFound
		}
		log.Err(err).Int64("id", fileID).Msg("opening blob failed")
		return models.FileRecord{}, nil, fmt.Errorf("opening blob failed: %w", err)
	}

	log.Debug().Int64("id", fileID).Str("filename", record.Filename).Msg("file download started")

	return record, blob, nil
}

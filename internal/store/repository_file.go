package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/mjardin/docshare/internal/logger"
	"github.com/mjardin/docshare/models"
)

// fileRepository is the PostgreSQL-backed implementation of [FileRepository]
// working against the "files" table.
//
// SELECT queries are built with squirrel; the two write statements are fixed
// and live in [sql_queries.go] next to the user queries.
type fileRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// fileColumns lists the files table columns in scan order.
var fileColumns = []string{
	"file_id", "filename", "file_path", "file_type",
	"uploaded_by", "upload_date", "file_size", "download_url",
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateFile inserts the metadata row. DownloadURL is deliberately absent
// from the INSERT: the capability link encodes the server-assigned FileID,
// so it can only be patched in once this call has returned.
func (r *fileRepository) CreateFile(ctx context.Context, file models.FileRecord) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFile,
		file.Filename, file.FilePath, file.FileType, file.UploadedBy, file.FileSize)

	created, err := scanFileRecord(row)
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.CreateFile").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: inserting file record")
		return models.FileRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// SetDownloadURL performs the phase-two patch binding the minted capability
// link to the record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDownloadURLTaken].
//   - Zero affected rows → [ErrFileNotFound].
func (r *fileRepository) SetDownloadURL(ctx context.Context, fileID int64, downloadURL string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setDownloadURL, fileID, downloadURL)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrDownloadURLTaken
		}

		log.Err(err).
			Str("func", "*fileRepository.SetDownloadURL").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: patching download url")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}

// FindFileByID returns the record with the given id, or [ErrFileNotFound].
func (r *fileRepository) FindFileByID(ctx context.Context, fileID int64) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(fileColumns...).
		From(models.FileRecord{}.TableName()).
		Where(sq.Eq{"file_id": fileID}).
		ToSql()
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanFileRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FileRecord{}, ErrFileNotFound
		}

		log.Err(err).Str("func", "*fileRepository.FindFileByID").Msg("error: querying file record")
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListFiles returns every file record, newest upload first. Both the full
// ops listing and the reduced client projection are served from this query;
// the projection is applied at the service layer.
func (r *fileRepository) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(fileColumns...).
		From(models.FileRecord{}.TableName()).
		OrderBy("upload_date DESC", "file_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.ListFiles").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: querying file records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.FileRecord, 0)
	for rows.Next() {
		var file models.FileRecord
		if err := rows.Scan(
			&file.FileID, &file.Filename, &file.FilePath, &file.FileType,
			&file.UploadedBy, &file.UploadDate, &file.FileSize, &file.DownloadURL,
		); err != nil {
			log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("error: scanning file record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return files, nil
}

func scanFileRecord(row *sql.Row) (models.FileRecord, error) {
	var file models.FileRecord
	err := row.Scan(
		&file.FileID, &file.Filename, &file.FilePath, &file.FileType,
		&file.UploadedBy, &file.UploadDate, &file.FileSize, &file.DownloadURL,
	)

	return file, err
}

package validators

import (
	"context"
	"testing"

	"github.com/mjardin/docshare/models"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validUpload() models.FileRecord {
	return models.FileRecord{
		Filename: "report.docx",
		FileType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}

// ---------------------------------------------------------------------------
// TestNewUploadValidator
// ---------------------------------------------------------------------------

func TestNewUploadValidator(t *testing.T) {
	v := NewUploadValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewUploadValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("FileRecord value", func(t *testing.T) {
		err := v.Validate(ctx, validUpload())
		require.NoError(t, err)
	})

	t.Run("FileRecord pointer", func(t *testing.T) {
		record := validUpload()
		err := v.Validate(ctx, &record)
		require.NoError(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validUpload(), "owner")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Filename
// ---------------------------------------------------------------------------

func TestValidate_Filename(t *testing.T) {
	v := NewUploadValidator()
	ctx := context.Background()

	t.Run("empty filename", func(t *testing.T) {
		record := validUpload()
		record.Filename = ""
		err := v.Validate(ctx, record, FieldFilename)
		require.ErrorIs(t, err, ErrEmptyFilename)
	})

	t.Run("allowed extensions", func(t *testing.T) {
		for _, name := range []string{"report.docx", "deck.pptx", "budget.xlsx"} {
			record := validUpload()
			record.Filename = name
			err := v.Validate(ctx, record, FieldFilename)
			require.NoError(t, err, name)
		}
	})

	t.Run("extension check is case-insensitive", func(t *testing.T) {
		record := validUpload()
		record.Filename = "REPORT.DOCX"
		err := v.Validate(ctx, record, FieldFilename)
		require.NoError(t, err)
	})

	t.Run("disallowed extensions", func(t *testing.T) {
		for _, name := range []string{"malware.exe", "notes.txt", "report.pdf", "archive.docx.zip", "noextension"} {
			record := validUpload()
			record.Filename = name
			err := v.Validate(ctx, record, FieldFilename)
			require.ErrorIs(t, err, ErrExtensionNotAllowed, name)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidate_ContentType
// ---------------------------------------------------------------------------

func TestValidate_ContentType(t *testing.T) {
	v := NewUploadValidator()
	ctx := context.Background()

	t.Run("allowed content types", func(t *testing.T) {
		for _, ct := range []string{
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/vnd.openxmlformats-officedocument.presentationml.presentation",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		} {
			record := validUpload()
			record.FileType = ct
			err := v.Validate(ctx, record, FieldContentType)
			require.NoError(t, err, ct)
		}
	})

	t.Run("disallowed content types", func(t *testing.T) {
		for _, ct := range []string{"application/octet-stream", "text/plain", "application/zip", ""} {
			record := validUpload()
			record.FileType = ct
			err := v.Validate(ctx, record, FieldContentType)
			require.ErrorIs(t, err, ErrContentTypeNotAllowed, ct)
		}
	})

	t.Run("both fields checked by default", func(t *testing.T) {
		record := validUpload()
		record.FileType = "application/octet-stream"
		err := v.Validate(ctx, record)
		require.ErrorIs(t, err, ErrContentTypeNotAllowed)
	})
}

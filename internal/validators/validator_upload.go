package validators

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/mjardin/docshare/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldFilename targets the original filename of an uploaded document.
	FieldFilename = "filename"

	// FieldContentType targets the declared MIME type of an uploaded document.
	FieldContentType = "content_type"
)

// allowedExtensions and allowedContentTypes define the office-document
// allow-set. Both checks must pass: a correct extension with a foreign
// declared content type is rejected, and vice versa.
var allowedExtensions = map[string]struct{}{
	".docx": {},
	".pptx": {},
	".xlsx": {},
}

var allowedContentTypes = map[string]struct{}{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
}

// UploadValidator enforces the office-document allow-set on incoming uploads.
// The extension check is case-insensitive and considers only the final
// extension, so "archive.docx.zip" is rejected.
type UploadValidator struct{}

// NewUploadValidator returns a Validator for uploaded file records.
func NewUploadValidator() *UploadValidator {
	return &UploadValidator{}
}

// Validate validates an upload candidate. Supported inputs are
// models.FileRecord and *models.FileRecord; anything else returns
// ErrUnsupportedType. With no field names, every field is checked.
func (v *UploadValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch record := value.(type) {
	case models.FileRecord:
		return v.validateFileRecord(ctx, record, fields...)
	case *models.FileRecord:
		return v.validateFileRecord(ctx, *record, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadValidator) validateFileRecord(_ context.Context, record models.FileRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFilename, FieldContentType}
	}

	for _, f := range fields {
		switch f {
		case FieldFilename:
			if record.Filename == "" {
				return ErrEmptyFilename
			}
			ext := strings.ToLower(filepath.Ext(record.Filename))
			if _, ok := allowedExtensions[ext]; !ok {
				return ErrExtensionNotAllowed
			}
		case FieldContentType:
			if _, ok := allowedContentTypes[record.FileType]; !ok {
				return ErrContentTypeNotAllowed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

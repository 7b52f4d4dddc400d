package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFilename         = errors.New("filename is required")
	ErrExtensionNotAllowed   = errors.New("file extension is not allowed")
	ErrContentTypeNotAllowed = errors.New("content type is not allowed")
)

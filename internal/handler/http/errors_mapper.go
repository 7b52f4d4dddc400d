package http

import (
	"errors"
	"net/http"

	"github.com/mjardin/docshare/internal/service"
	"github.com/mjardin/docshare/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:        http.StatusBadRequest,
	service.ErrInvalidCredentials:         http.StatusUnauthorized,
	service.ErrNotVerified:                http.StatusUnauthorized,
	service.ErrInvalidVerificationToken:   http.StatusBadRequest,
	service.ErrExpiredVerificationToken:   http.StatusBadRequest,
	service.ErrInvalidOrExpiredResetToken: http.StatusBadRequest,
	service.ErrAlreadyVerified:            http.StatusBadRequest,
	service.ErrSessionIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrUnsupportedFileType:        http.StatusBadRequest,
	service.ErrInvalidOrExpiredLink:       http.StatusBadRequest,
	service.ErrFileNotFound:               http.StatusNotFound,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrFileNotFound:       http.StatusNotFound,
	store.ErrDownloadURLTaken:   http.StatusInternalServerError,
	store.ErrBlobNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

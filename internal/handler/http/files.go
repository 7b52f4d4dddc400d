package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mjardin/docshare/internal/logger"
	"github.com/mjardin/docshare/internal/service"
	"github.com/mjardin/docshare/internal/utils"
	"github.com/mjardin/docshare/models"
)

// maxUploadMemory caps the multipart parts buffered in memory; larger file
// parts spill to temporary files.
const maxUploadMemory = 32 << 20

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing `file` form field")
		http.Error(w, "missing `file` form field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if mediaType, _, parseErr := mime.ParseMediaType(contentType); parseErr == nil {
		contentType = mediaType
	}

	record, err := h.services.FileService.Upload(ctx, session.UserID, header.Filename, contentType, file)
	if err != nil {
		status := statusFromError(err)
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			log.Err(err).Str("filename", header.Filename).Msg("unsupported file type")
			http.Error(w, service.ErrUnsupportedFileType.Error(), status)
		default:
			log.Err(err).Str("filename", header.Filename).Msg("error uploading file")
			http.Error(w, http.StatusText(status), status)
		}
		return
	}

	var downloadURL string
	if record.DownloadURL != nil {
		downloadURL = *record.DownloadURL
	}

	utils.WriteJSON(w, models.UploadResponse{
		Message:     "file uploaded successfully",
		Filename:    record.Filename,
		DownloadURL: downloadURL,
	}, http.StatusOK)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	records, err := h.services.FileService.ListAll(ctx)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("error listing files")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) listClientFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	views, err := h.services.FileService.ListClient(ctx)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("error listing files")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	link := chi.URLParam(r, "token")

	record, blob, err := h.services.FileService.Download(ctx, link)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpiredLink):
			log.Err(err).Msg("invalid or expired download link")
			http.Error(w, "invalid or expired download link", http.StatusBadRequest)
		case errors.Is(err, service.ErrFileNotFound):
			log.Err(err).Msg("file not found")
			http.Error(w, "file not found", http.StatusNotFound)
		default:
			status := statusFromError(err)
			log.Err(err).Msg("error downloading file")
			http.Error(w, http.StatusText(status), status)
		}
		return
	}
	defer blob.Close()

	w.Header().Set("Content-Type", record.FileType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", record.FileSize))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, blob); err != nil {
		// Headers are already out; nothing to do but log.
		log.Err(err).Int64("id", record.FileID).Msg("error streaming file body")
	}
}

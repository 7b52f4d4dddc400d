package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/mjardin/docshare/internal/service"
	"github.com/mjardin/docshare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// multipartBody builds a multipart form with a single "file" part carrying
// the given filename, content type, and payload.
func multipartBody(t *testing.T, filename, contentType, payload string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = io.WriteString(part, payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// ─────────────────────────────────────────────
// upload
// ─────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	link := "minted-link"
	files := &mockFileService{
		uploadFn: func(_ context.Context, uploaderID int64, filename, contentType string, r io.Reader) (models.FileRecord, error) {
			assert.Equal(t, int64(42), uploaderID)
			assert.Equal(t, "report.docx", filename)
			assert.Equal(t, testDocxContentType, contentType)

			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "document bytes", string(data))

			return models.FileRecord{
				FileID:      7,
				Filename:    filename,
				FileType:    contentType,
				FileSize:    int64(len(data)),
				DownloadURL: &link,
			}, nil
		},
	}

	h := newHandlerWithFiles(t, &mockAuthService{}, files)
	body, formContentType := multipartBody(t, "report.docx", testDocxContentType, "document bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/ops/upload", body)
	req.Header.Set("Content-Type", formContentType)
	req = req.WithContext(sessionContext(req.Context(), stubSession(42, "ops@example.com", true)))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "report.docx", resp.Filename)
	assert.Equal(t, "minted-link", resp.DownloadURL)
}

func TestUpload_UnsupportedFileType(t *testing.T) {
	files := &mockFileService{
		uploadFn: func(_ context.Context, _ int64, _, _ string, _ io.Reader) (models.FileRecord, error) {
			return models.FileRecord{}, service.ErrUnsupportedFileType
		},
	}

	h := newHandlerWithFiles(t, &mockAuthService{}, files)
	body, formContentType := multipartBody(t, "malware.exe", "application/octet-stream", "MZ")
	req := httptest.NewRequest(http.MethodPost, "/api/ops/upload", body)
	req.Header.Set("Content-Type", formContentType)
	req = req.WithContext(sessionContext(req.Context(), stubSession(1, "ops@example.com", true)))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "allowed types")
}

func TestUpload_MissingFilePart(t *testing.T) {
	h := newHandlerWithFiles(t, &mockAuthService{}, &mockFileService{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ops/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = req.WithContext(sessionContext(req.Context(), stubSession(1, "ops@example.com", true)))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_NoSession(t *testing.T) {
	h := newHandlerWithFiles(t, &mockAuthService{}, &mockFileService{})
	body, formContentType := multipartBody(t, "report.docx", testDocxContentType, "x")
	req := httptest.NewRequest(http.MethodPost, "/api/ops/upload", body)
	req.Header.Set("Content-Type", formContentType)
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// listings
// ─────────────────────────────────────────────

func TestListFiles_FullRecords(t *testing.T) {
	link := "link-1"
	files := &mockFileService{
		listAllFn: func(_ context.Context) ([]models.FileRecord, error) {
			return []models.FileRecord{
				{
					FileID:      1,
					Filename:    "report.docx",
					FilePath:    "uploads/report.docx",
					UploadedBy:  42,
					UploadDate:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
					FileSize:    14,
					DownloadURL: &link,
				},
			}, nil
		},
	}

	h := newHandlerWithFiles(t, &mockAuthService{}, files)
	req := httptest.NewRequest(http.MethodGet, "/api/ops/files", nil)
	rec := httptest.NewRecorder()

	h.listFiles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// The ops listing carries internal fields.
	assert.Contains(t, rec.Body.String(), "uploads/report.docx")
	assert.Contains(t, rec.Body.String(), "uploaded_by")
}

func TestListClientFiles_Projection(t *testing.T) {
	link := "link-1"
	files := &mockFileService{
		listClientFn: func(_ context.Context) ([]models.ClientFileView, error) {
			return []models.ClientFileView{
				{
					Filename:    "report.docx",
					UploadDate:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
					FileType:    testDocxContentType,
					FileSize:    14,
					DownloadURL: link,
				},
			}, nil
		},
	}

	h := newHandlerWithFiles(t, &mockAuthService{}, files)
	req := httptest.NewRequest(http.MethodGet, "/api/client/files", nil)
	rec := httptest.NewRecorder()

	h.listClientFiles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// The client listing must not leak storage or attribution fields.
	assert.Contains(t, rec.Body.String(), "report.docx")
	assert.NotContains(t, rec.Body.String(), "file_path")
	assert.NotContains(t, rec.Body.String(), "uploaded_by")
}

func TestListClientFiles_Empty(t *testing.T) {
	files := &mockFileService{
		listClientFn: func(_ context.Context) ([]models.ClientFileView, error) {
			return []models.ClientFileView{}, nil
		},
	}

	h := newHandlerWithFiles(t, &mockAuthService{}, files)
	req := httptest.NewRequest(http.MethodGet, "/api/client/files", nil)
	rec := httptest.NewRecorder()

	h.listClientFiles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

// ─────────────────────────────────────────────
// download
// ─────────────────────────────────────────────

// Download tests go through the router because the handler reads the link
// from the URL path; the auth middleware is satisfied with a parse stub.
func clientRouter(t *testing.T, files service.FileService) http.Handler {
	t.Helper()
	auth := &mockAuthService{
		parseSessionFn: func(_ context.Context, _ string) (models.Session, error) {
			return stubSession(7, "client@example.com", false), nil
		},
	}
	return newHandlerWithFiles(t, auth, files).Init()
}

func TestDownload_Success(t *testing.T) {
	files := &mockFileService{
		downloadFn: func(_ context.Context, link string) (models.FileRecord, io.ReadCloser, error) {
			assert.Equal(t, "good-link", link)
			record := models.FileRecord{
				FileID:   7,
				Filename: "report.docx",
				FileType: testDocxContentType,
				FileSize: 14,
			}
			return record, io.NopCloser(strings.NewReader("document bytes")), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/client/download/good-link", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	clientRouter(t, files).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "document bytes", rec.Body.String())
	assert.Equal(t, testDocxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="report.docx"`)
}

func TestDownload_InvalidOrExpiredLink(t *testing.T) {
	files := &mockFileService{
		downloadFn: func(_ context.Context, _ string) (models.FileRecord, io.ReadCloser, error) {
			return models.FileRecord{}, nil, service.ErrInvalidOrExpiredLink
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/client/download/garbage", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	clientRouter(t, files).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownload_FileNotFound(t *testing.T) {
	files := &mockFileService{
		downloadFn: func(_ context.Context, _ string) (models.FileRecord, io.ReadCloser, error) {
			return models.FileRecord{}, nil, service.ErrFileNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/client/download/orphan-link", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()

	clientRouter(t, files).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

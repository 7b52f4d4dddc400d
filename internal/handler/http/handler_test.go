package http

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/mjardin/docshare/internal/logger"
	"github.com/mjardin/docshare/internal/service"
	"github.com/mjardin/docshare/internal/utils"
	"github.com/mjardin/docshare/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn             func(ctx context.Context, email, password string, isOps bool) (models.User, error)
	verifyEmailFn        func(ctx context.Context, token string) error
	loginFn              func(ctx context.Context, email, password string) (models.Session, error)
	forgotPasswordFn     func(ctx context.Context, email string) error
	resetPasswordFn      func(ctx context.Context, token, newPassword string) error
	resendVerificationFn func(ctx context.Context, email string) error
	parseSessionFn       func(ctx context.Context, tokenString string) (models.Session, error)
}

func (m *mockAuthService) Signup(ctx context.Context, email, password string, isOps bool) (models.User, error) {
	return m.signupFn(ctx, email, password, isOps)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, token string) error {
	return m.verifyEmailFn(ctx, token)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.forgotPasswordFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.resetPasswordFn(ctx, token, newPassword)
}

func (m *mockAuthService) ResendVerification(ctx context.Context, email string) error {
	return m.resendVerificationFn(ctx, email)
}

func (m *mockAuthService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	return m.parseSessionFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock FileService
// ─────────────────────────────────────────────

// mockFileService implements service.FileService for unit tests.
type mockFileService struct {
	uploadFn     func(ctx context.Context, uploaderID int64, filename, contentType string, r io.Reader) (models.FileRecord, error)
	listAllFn    func(ctx context.Context) ([]models.FileRecord, error)
	listClientFn func(ctx context.Context) ([]models.ClientFileView, error)
	downloadFn   func(ctx context.Context, link string) (models.FileRecord, io.ReadCloser, error)
}

func (m *mockFileService) Upload(ctx context.Context, uploaderID int64, filename, contentType string, r io.Reader) (models.FileRecord, error) {
	return m.uploadFn(ctx, uploaderID, filename, contentType, r)
}

func (m *mockFileService) ListAll(ctx context.Context) ([]models.FileRecord, error) {
	return m.listAllFn(ctx)
}

func (m *mockFileService) ListClient(ctx context.Context) ([]models.ClientFileView, error) {
	return m.listClientFn(ctx)
}

func (m *mockFileService) Download(ctx context.Context, link string) (models.FileRecord, io.ReadCloser, error) {
	return m.downloadFn(ctx, link)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// newHandlerWithFiles builds a Handler with both service mocks.
func newHandlerWithFiles(t *testing.T, auth service.AuthService, files service.FileService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
		FileService: files,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubSession returns a models.Session carrying the given identity claims.
func stubSession(userID int64, email string, ops bool) models.Session {
	return models.Session{
		UserID:       userID,
		Email:        email,
		Ops:          ops,
		SignedString: "signed.jwt.token",
	}
}

// sessionContext returns a context with the session stored the way the auth
// middleware stores it.
func sessionContext(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, utils.SessionCtxKey, &session)
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Get("/api/auth/verify/{token}", h.verifyEmail)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)
		r.Post("/api/auth/resend-verification", h.resendVerification)
	})

	// operator routes: valid session plus the ops role
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireOps)
		r.Post("/api/ops/upload", h.upload)
		r.Get("/api/ops/files", h.listFiles)
	})

	// client routes: valid session plus the client role
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireClient)
		r.Get("/api/client/files", h.listClientFiles)
		r.Get("/api/client/download/{token}", h.download)
	})

	return router
}

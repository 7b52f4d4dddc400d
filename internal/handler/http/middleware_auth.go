package http

import (
	"context"
	"net/http"

	"github.com/mjardin/docshare/internal/logger"
	"github.com/mjardin/docshare/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseSession], and on success stores
// the parsed session in the request context under [utils.SessionCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent, cannot be parsed as a bearer token, or carries an expired or
// otherwise invalid session token. Authentication always runs before any
// role gate, so an unauthenticated request to a role-gated route gets 401,
// never 403.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSession(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("session token rejected")
			http.Error(w, "invalid or expired session", http.StatusUnauthorized)
			return
		}

		// Store the parsed session in the context so that downstream
		// handlers can read the role and account id without re-parsing.
		ctx = context.WithValue(ctx, utils.SessionCtxKey, &session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireOps admits only sessions carrying the ops role. It must run after
// [Handler.auth]; a missing session is treated as unauthenticated, not
// forbidden.
func (h *Handler) requireOps(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			log.Error().Msg("no session in request context")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if !session.Ops {
			log.Warn().Str("email", session.Email).Msg("ops route denied for client account")
			http.Error(w, "operator role required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireClient admits only sessions without the ops role.
func (h *Handler) requireClient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			log.Error().Msg("no session in request context")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if session.Ops {
			log.Warn().Str("email", session.Email).Msg("client route denied for ops account")
			http.Error(w, "client role required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

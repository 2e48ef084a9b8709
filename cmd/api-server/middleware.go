package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/campuskit/leave-tracker/internal/ctxstore"
	"github.com/campuskit/leave-tracker/internal/database"
	"github.com/campuskit/leave-tracker/internal/model"
	"github.com/campuskit/leave-tracker/internal/response"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/tomasen/realip"
)

const (
	_traceIDKey = ctxstore.Key("traceId")
	_sessionKey = ctxstore.Key("session")
)

// requestLogger scopes the application logger to the request's trace id.
func (app *application) requestLogger(r *http.Request) *slog.Logger {
	return app.logger.With(_traceIDKey.String(), ctxstore.MustFrom[string](r.Context(), _traceIDKey))
}

func (app *application) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := genTraceID()
		ctx := ctxstore.With(r.Context(), _traceIDKey, tid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
			tid    = ctxstore.MustFrom[string](r.Context(), _traceIDKey)
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto, _traceIDKey.String(), tid)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount)

		app.serverLogger().Info("access", userAttrs, requestAttrs, responseAttrs)
	})
}

func (app *application) CORS(next http.Handler) http.Handler {
	return cors.AllowAll().Handler(next)
}

// authenticate resolves the bearer token into a persisted session and
// threads it through the request context. Every route past the login
// endpoint works against this explicit identity, not a global.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := bearerToken(r)
		if !ok {
			app.authenticationRequired(w, r)
			return
		}

		dao := database.NewSessionDAO(app.requestLogger(r), app.db)

		session, err := dao.Get(ctx, token)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				app.authenticationRequired(w, r)
				return
			}

			app.serverError(w, r, err)
			return
		}
		session.Token = token

		ctx = ctxstore.With(ctx, _sessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requireStudent(next http.Handler) http.Handler {
	return app.requireRole(next, model.RoleStudent)
}

func (app *application) requireHOD(next http.Handler) http.Handler {
	return app.requireRole(next, model.RoleHOD)
}

func (app *application) requireRole(next http.Handler, role model.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := ctxstore.MustFrom[model.Session](r.Context(), _sessionKey)
		if session.Role != role {
			app.forbidden(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func genTraceID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}

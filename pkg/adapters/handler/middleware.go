package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	"github.com/nattawat/golinks/pkg/ports"
)

type ctxKey string

const userKey ctxKey = "user"

// tokenExtractor pulls a candidate session token out of a request.
type tokenExtractor func(r *http.Request) (string, bool)

// Middleware gates protected routes behind a valid session token.
type Middleware struct {
	tokens     ports.TokenService
	extractors []tokenExtractor
	logger     *zap.Logger
}

func NewMiddleware(tokens ports.TokenService, cookies *securecookie.SecureCookie, logger *zap.Logger) *Middleware {
	return &Middleware{
		tokens: tokens,
		// Tried in order; first extractor that yields a token wins.
		extractors: []tokenExtractor{
			fromBearerHeader,
			fromSignedCookie(cookies),
		},
		logger: logger,
	}
}

// Auth rejects the request with a uniform 401 unless one of the
// extractors yields a token that validates. The authenticated username is
// placed in the request context.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		for _, extract := range m.extractors {
			if t, ok := extract(r); ok {
				token = t
				break
			}
		}
		if token == "" {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			m.logger.Debug("rejected token", zap.Error(err))
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func fromBearerHeader(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// fromSignedCookie verifies the cookie signature before the token inside
// is even parsed; a tampered cookie never reaches the JWT layer.
func fromSignedCookie(cookies *securecookie.SecureCookie) tokenExtractor {
	return func(r *http.Request) (string, bool) {
		cookie, err := r.Cookie(bearerCookie)
		if err != nil {
			return "", false
		}
		var token string
		if err := cookies.Decode(bearerCookie, cookie.Value, &token); err != nil {
			return "", false
		}
		return token, true
	}
}

// UsernameFromContext returns the authenticated username stored by Auth,
// or an empty string if the request was not authenticated.
func UsernameFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(userKey).(string); ok {
		return s
	}
	return ""
}

// WithRequestLogging logs each request with method, path, status and
// duration.
func WithRequestLogging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

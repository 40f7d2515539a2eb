package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nattawat/golinks/pkg/config"
	"github.com/nattawat/golinks/pkg/ports"
)

// NewRouter creates and configures the main application router.
//
// Routes:
//
//	POST /login        → set signed session cookie
//	POST /login/token  → return token in the body
//	POST /logout       → clear session cookie
//	GET  /healthz      → liveness probe
//	GET  /{short}      → redirect to the target URL
//	GET  /api/link     → list links         (auth)
//	POST /api/link     → create link        (auth)
//	DELETE /api/link   → delete link        (auth)
//	GET  /api/user     → current username   (auth)
func NewRouter(cfg *config.Config, service ports.LinkService, tokens ports.TokenService, logger *zap.Logger) http.Handler {
	cookies := newCookieCodec(cfg.JWTSecret)

	h := NewHTTPHandler(service, logger)
	authHandler := NewAuthHandler(service, tokens, cookies, cfg.IsProduction(), logger)
	mw := NewMiddleware(tokens, cookies, logger)

	r := chi.NewRouter()
	r.Use(WithRequestLogging(logger))

	// Public routes
	r.Get("/healthz", h.Healthz)
	r.Post("/login", authHandler.Login)
	r.Post("/login/token", authHandler.LoginToken)
	r.Post("/logout", authHandler.Logout)

	// Protected API
	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))
		r.Use(mw.Auth)

		r.Get("/link", h.List)
		r.Post("/link", h.Create)
		r.Delete("/link", h.Delete)
		r.Get("/user", authHandler.CurrentUser)
	})

	// Redirect goes last so it cannot shadow the fixed routes
	r.Get("/{short}", h.Redirect)

	return r
}

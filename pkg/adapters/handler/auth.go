package handler

import (
	"crypto/sha256"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	"github.com/nattawat/golinks/pkg/ports"
)

// bearerCookie is the signed cookie carrying the session token for
// browser clients. API clients send the token as a bearer header instead.
const bearerCookie = "bearer_token"

type AuthHandler struct {
	service      ports.LinkService
	tokens       ports.TokenService
	cookies      *securecookie.SecureCookie
	logger       *zap.Logger
	isProduction bool
}

func NewAuthHandler(service ports.LinkService, tokens ports.TokenService, cookies *securecookie.SecureCookie, isProduction bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:      service,
		tokens:       tokens,
		cookies:      cookies,
		logger:       logger,
		isProduction: isProduction,
	}
}

// newCookieCodec builds the signing-only codec for the bearer cookie. The
// hash key is derived from the process signing secret, so rotating the
// secret also invalidates every outstanding cookie.
func newCookieCodec(secret string) *securecookie.SecureCookie {
	hashKey := sha256.Sum256([]byte(secret))
	sc := securecookie.New(hashKey[:], nil)
	sc.MaxAge(int(24 * time.Hour / time.Second))
	return sc
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginStatus struct {
	Success bool `json:"success"`
}

// AuthBody is the token response for API clients.
type AuthBody struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// authorize verifies the credentials and issues a session token. The
// rejection message never reveals which part of the credential was wrong.
func (h *AuthHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return "", false
	}

	username, ok := h.service.VerifyCredentials(r.Context(), req.Username, req.Password)
	if !ok {
		h.logger.Info("rejected login", zap.String("username", req.Username))
		http.Error(w, "wrong credentials", http.StatusUnauthorized)
		return "", false
	}

	token, err := h.tokens.Issue(username)
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return "", false
	}
	return token, true
}

// Login verifies the credentials and sets the signed session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authorize(w, r)
	if !ok {
		return
	}

	signed, err := h.cookies.Encode(bearerCookie, token)
	if err != nil {
		h.logger.Error("failed to sign cookie", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     bearerCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.isProduction,
		SameSite: http.SameSiteStrictMode,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(LoginStatus{Success: true})
}

// LoginToken verifies the credentials and returns the token in the body.
func (h *AuthHandler) LoginToken(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authorize(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(AuthBody{AccessToken: token, TokenType: "Bearer"})
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     bearerCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.isProduction,
		SameSite: http.SameSiteStrictMode,
	})
	w.WriteHeader(http.StatusOK)
}

// CurrentUser reports the authenticated username.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"username": username})
}

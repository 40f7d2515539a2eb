package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nattawat/golinks/pkg/core/domain"
	"github.com/nattawat/golinks/pkg/core/services"
)

// fakeLinkService implements ports.LinkService for handler tests.
type fakeLinkService struct {
	username string
	password string
	links    map[string]string
}

func (f *fakeLinkService) ListLinks(ctx context.Context) []domain.Link {
	out := make([]domain.Link, 0, len(f.links))
	for short, url := range f.links {
		out = append(out, domain.Link{Short: short, URL: url})
	}
	return out
}

func (f *fakeLinkService) GetLink(ctx context.Context, short string) (string, error) {
	url, ok := f.links[short]
	if !ok {
		return "", domain.ErrNotFound
	}
	return url, nil
}

func (f *fakeLinkService) AddLink(ctx context.Context, link domain.Link) error {
	f.links[link.Short] = link.URL
	return nil
}

func (f *fakeLinkService) RemoveLink(ctx context.Context, short string) error {
	if _, ok := f.links[short]; !ok {
		return domain.ErrNotFound
	}
	delete(f.links, short)
	return nil
}

func (f *fakeLinkService) VerifyCredentials(ctx context.Context, username, password string) (string, bool) {
	if username == f.username && password == f.password {
		return username, true
	}
	return "", false
}

func newTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	service := &fakeLinkService{username: "admin", password: "secret123", links: map[string]string{}}
	tokens := services.NewTokenService("test-secret")
	return NewAuthHandler(service, tokens, newCookieCodec("test-secret"), false, zap.NewNop())
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
		expectCookie bool
	}{
		{
			name:         "valid credentials set the session cookie",
			body:         `{"username":"admin","password":"secret123"}`,
			expectedCode: http.StatusOK,
			expectCookie: true,
		},
		{
			name:         "wrong password",
			body:         `{"username":"admin","password":"wrong"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong username",
			body:         `{"username":"root","password":"secret123"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing fields",
			body:         `{"username":"admin"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			body:         `not json`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAuthHandler(t)

			req := httptest.NewRequest("POST", "/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			cookies := rr.Result().Cookies()
			if tt.expectCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, bearerCookie, cookies[0].Name)
				assert.True(t, cookies[0].HttpOnly)

				// The cookie value must decode back to a valid token.
				var token string
				require.NoError(t, h.cookies.Decode(bearerCookie, cookies[0].Value, &token))
				claims, err := h.tokens.Validate(token)
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Subject)
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}

func TestAuthHandler_LoginToken(t *testing.T) {
	h := newTestAuthHandler(t)

	req := httptest.NewRequest("POST", "/login/token", strings.NewReader(`{"username":"admin","password":"secret123"}`))
	rr := httptest.NewRecorder()
	h.LoginToken(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body AuthBody
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "Bearer", body.TokenType)

	claims, err := h.tokens.Validate(body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestAuthHandler_Logout(t *testing.T) {
	h := newTestAuthHandler(t)

	req := httptest.NewRequest("POST", "/logout", nil)
	rr := httptest.NewRecorder()
	h.Logout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, bearerCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

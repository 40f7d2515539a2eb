package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued session token stays valid. There is no
// revocation: logout only clears the client cookie, the token itself
// remains usable until it expires.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken covers every validation failure. Expired, malformed and
// forged tokens are deliberately indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and validates HS256-signed session tokens. The
// signing secret is injected at construction and immutable for the process
// lifetime; rotating it invalidates all outstanding tokens.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue signs a token asserting username, valid for TokenTTL.
func (s *TokenService) Issue(username string) (string, error) {
	now := s.now()
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the claims. Every
// failure surfaces as ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

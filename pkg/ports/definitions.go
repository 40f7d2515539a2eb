package ports

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nattawat/golinks/pkg/core/domain"
)

// StoreRepository defines persistence operations for the store file
type StoreRepository interface {
	// Load reads the store from disk. Returns domain.ErrStoreMissing if the
	// file is absent and domain.ErrStoreCorrupt if it fails to parse.
	Load(ctx context.Context) (*domain.Store, error)
	// Save serializes the full store and replaces the file contents.
	Save(ctx context.Context, store *domain.Store) error
	// Create hashes the password, builds a store with an empty link map and
	// persists it, overwriting any existing file. Confirmation before
	// overwrite is the caller's responsibility.
	Create(ctx context.Context, username, password string) (*domain.Store, error)
}

// LinkService defines the business logic operations over the link store
type LinkService interface {
	ListLinks(ctx context.Context) []domain.Link
	GetLink(ctx context.Context, short string) (string, error)
	AddLink(ctx context.Context, link domain.Link) error
	RemoveLink(ctx context.Context, short string) error

	// VerifyCredentials returns the authenticated username and true on a
	// match, or "" and false on any mismatch. It never reports which part
	// of the credential was wrong.
	VerifyCredentials(ctx context.Context, username, password string) (string, bool)
}

// PasswordHasher derives and verifies salted password hashes
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches the encoded hash. It fails
	// closed: a malformed hash verifies as false.
	Verify(password, encodedHash string) bool
}

// TokenService issues and validates signed session tokens
type TokenService interface {
	Issue(username string) (string, error)
	// Validate checks signature and expiry. Expired, malformed and forged
	// tokens all yield the same error; callers get a single invalid-token
	// outcome.
	Validate(tokenString string) (*jwt.RegisteredClaims, error)
}

package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"

	"github.com/nattawat/golinks/pkg/core/domain"
	"github.com/nattawat/golinks/pkg/ports"
)

// LinkService is the single owner of the in-memory store. All reads and
// writes of links or the credential go through it; mutations persist the
// full store inside the write-locked critical section, so saves are
// implicitly serialized and never interleave.
type LinkService struct {
	mu     sync.RWMutex
	store  *domain.Store
	repo   ports.StoreRepository
	hasher ports.PasswordHasher
}

func NewLinkService(store *domain.Store, repo ports.StoreRepository, hasher ports.PasswordHasher) *LinkService {
	if store.Links == nil {
		store.Links = make(map[string]string)
	}
	return &LinkService{store: store, repo: repo, hasher: hasher}
}

// ListLinks returns a snapshot of the current map. Order is unspecified.
func (s *LinkService) ListLinks(ctx context.Context) []domain.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]domain.Link, 0, len(s.store.Links))
	for short, url := range s.store.Links {
		links = append(links, domain.Link{Short: short, URL: url})
	}
	return links
}

// GetLink resolves a short key to its target URL.
func (s *LinkService) GetLink(ctx context.Context, short string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	url, ok := s.store.Links[short]
	if !ok {
		return "", domain.ErrNotFound
	}
	return url, nil
}

// AddLink inserts or overwrites the mapping and persists the whole store.
// On a failed save the in-memory entry stays applied; the in-memory state
// is authoritative and callers should retry the idempotent add.
func (s *LinkService) AddLink(ctx context.Context, link domain.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Links[link.Short] = link.URL

	if err := s.repo.Save(ctx, s.store); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// RemoveLink deletes the short key and persists. An unknown key fails with
// domain.ErrNotFound and leaves the store unchanged.
func (s *LinkService) RemoveLink(ctx context.Context, short string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Links[short]; !ok {
		return domain.ErrNotFound
	}
	delete(s.store.Links, short)

	if err := s.repo.Save(ctx, s.store); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// VerifyCredentials checks the username and password against the stored
// credential. Any mismatch yields ("", false); it never reports which part
// was wrong.
func (s *LinkService) VerifyCredentials(ctx context.Context, username, password string) (string, bool) {
	s.mu.RLock()
	cred := s.store.Credential()
	s.mu.RUnlock()

	// Compare the username in constant time and always run password
	// verification so both outcomes take similar work.
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(cred.Username)) == 1
	passMatch := s.hasher.Verify(password, cred.PasswordHash)

	if !userMatch || !passMatch {
		return "", false
	}
	return cred.Username, true
}

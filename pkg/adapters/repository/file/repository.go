package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nattawat/golinks/pkg/core/domain"
	"github.com/nattawat/golinks/pkg/ports"
)

// FileRepository persists the store as a single YAML file. Every save is a
// full-file rewrite; this is fine for hundreds to low thousands of links
// but is a known scalability ceiling.
type FileRepository struct {
	path   string
	hasher ports.PasswordHasher
}

func NewFileRepository(path string, hasher ports.PasswordHasher) *FileRepository {
	return &FileRepository{path: path, hasher: hasher}
}

// Load reads and parses the store file.
func (r *FileRepository) Load(ctx context.Context) (*domain.Store, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreMissing, r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading store file %s: %w", r.path, err)
	}

	var store domain.Store
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreCorrupt, r.path, err)
	}
	if store.Username == "" || store.PasswordHash == "" {
		return nil, fmt.Errorf("%w: %s: missing credential", domain.ErrStoreCorrupt, r.path)
	}
	if store.Links == nil {
		store.Links = make(map[string]string)
	}

	return &store, nil
}

// Save serializes the full store and atomically replaces the file. The
// write goes to a temp file in the same directory first so a crash
// mid-write cannot truncate the live store.
func (r *FileRepository) Save(ctx context.Context, store *domain.Store) error {
	data, err := yaml.Marshal(store)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing store file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing store file %s: %w", r.path, err)
	}

	return nil
}

// Create builds a fresh store with the given credential and an empty link
// map, hashes the password and persists it. Any existing file is
// overwritten; confirming the overwrite is the caller's job.
func (r *FileRepository) Create(ctx context.Context, username, password string) (*domain.Store, error) {
	hash, err := r.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	store := &domain.Store{
		Username:     username,
		PasswordHash: hash,
		Links:        make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	if err := r.Save(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

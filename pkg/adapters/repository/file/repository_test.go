package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nattawat/golinks/pkg/core/domain"
	"github.com/nattawat/golinks/pkg/core/services"
)

func newTestRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.yaml")
	return NewFileRepository(path, services.NewArgon2idHasher()), path
}

func TestFileRepository_CreateAndLoad(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", created.Username)
	assert.NotEqual(t, "secret123", created.PasswordHash, "password must not be stored in plaintext")
	assert.Empty(t, created.Links)
	assert.FileExists(t, path)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, loaded)
}

func TestFileRepository_SaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	store, err := repo.Create(ctx, "admin", "secret123")
	require.NoError(t, err)

	store.Links["go"] = "https://golang.org"
	store.Links["docs"] = "https://pkg.go.dev"
	require.NoError(t, repo.Save(ctx, store))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, store, loaded)
}

func TestFileRepository_LoadMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreMissing)
}

func TestFileRepository_LoadCorrupt(t *testing.T) {
	repo, path := newTestRepo(t)

	tests := []struct {
		name     string
		contents string
	}{
		{"not yaml", "{{{::not yaml"},
		{"wrong shape", "- just\n- a\n- list\n"},
		{"missing credential", "links:\n  go: https://golang.org\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0o644))

			_, err := repo.Load(context.Background())
			assert.ErrorIs(t, err, domain.ErrStoreCorrupt)
		})
	}
}

func TestFileRepository_SaveLeavesNoTempFiles(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	store, err := repo.Create(ctx, "admin", "secret123")
	require.NoError(t, err)
	store.Links["go"] = "https://golang.org"
	require.NoError(t, repo.Save(ctx, store))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}

func TestFileRepository_CreateOverwrites(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, "admin", "secret123")
	require.NoError(t, err)
	first.Links["go"] = "https://golang.org"
	require.NoError(t, repo.Save(ctx, first))

	// Re-running bootstrap replaces the credential and drops all links.
	_, err = repo.Create(ctx, "operator", "hunter2")
	require.NoError(t, err)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "operator", loaded.Username)
	assert.Empty(t, loaded.Links)
}

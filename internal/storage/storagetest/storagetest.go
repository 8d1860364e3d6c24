// Package storagetest opens throwaway SQLite stores for tests.
package storagetest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// New returns a migrated store in t.TempDir, closed when the test ends.
func New(t *testing.T) *storage.Storage {
	t.Helper()

	store, err := storage.NewStorage(&config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.Migrate()
	require.NoError(t, err)

	return store
}

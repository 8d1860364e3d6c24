package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func openTestStore(t *testing.T, path string) *storage.Storage {
	t.Helper()
	store, err := storage.NewStorage(&config.Config{DatabasePath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestMigrateCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	dbPath := filepath.Join(dir, "data", "finance.db")

	out, err := execute(t, "migrate", "--database", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	categories, err := openTestStore(t, dbPath).Read().Categories.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestImportCommand_CSV(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	dbPath := filepath.Join(dir, "finance.db")
	csvPath := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"date,merchant,amount,category\n"+
			"2024-01-01,Coffee Shop,4.50,Food\n"+
			"2024-01-02,Landlord,1200,Rent\n"+
			"2024-01-03,Garage,80,Rent\n"), 0o600))

	out, err := execute(t, "import", csvPath, "--database", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 transactions")

	store := openTestStore(t, dbPath)
	rows, err := store.Read().Transactions.ListJoined(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Food", rows[0].CategoryName)
	assert.Equal(t, "Rent", rows[2].CategoryName)

	categories, err := store.Read().Categories.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, len(config.DefaultCategories)+1)
}

func TestImportCommand_InvalidRowWritesNothing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	dbPath := filepath.Join(dir, "finance.db")
	csvPath := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"date,merchant,amount,category\n"+
			"2024-01-01,Coffee Shop,4.50,Food\n"+
			"01/02/2024,Landlord,1200,Rent\n"), 0o600))

	_, err := execute(t, "import", csvPath, "--database", dbPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")

	rows, err := openTestStore(t, dbPath).Read().Transactions.ListJoined(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestImportCommand_DryRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	dbPath := filepath.Join(dir, "finance.db")
	csvPath := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("date,merchant,amount\n2024-01-01,Shop,1\n"), 0o600))

	out, err := execute(t, "import", csvPath, "--dry-run", "--database", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "parsed 1 transactions")

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportCommand_RequiresFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "import")
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "migrate", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add users table", "add_users_table"},
		{"Add-Users-Table", "add_users_table"},
		{"ADD_USERS_TABLE", "add_users_table"},
		{"add__users__table", "add_users_table"},
		{"Add Users 123", "add_users_123"},
		{"create-point-transactions", "create_point_transactions"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "create posts", "Gallery posts with review status")
	require.NoError(t, err)
	require.NotNil(t, mf)

	// First migration in an empty directory
	assert.Equal(t, "000001", mf.Version)
	assert.Equal(t, filepath.Join(dir, "000001_create_posts.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, "000001_create_posts.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: create_posts")
	assert.Contains(t, string(up), "-- Description: Gallery posts with review status")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "-- Migration: create_posts (Rollback)")
}

func TestCreateMigrationSequentialVersions(t *testing.T) {
	dir := t.TempDir()

	first, err := CreateMigration(dir, "create users", "Accounts")
	require.NoError(t, err)
	second, err := CreateMigration(dir, "create classes", "Classes")
	require.NoError(t, err)

	assert.Equal(t, "000001", first.Version)
	assert.Equal(t, "000002", second.Version)
}

func TestCreateMigrationContinuesFromExisting(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"000003_add_posts.up.sql", "000003_add_posts.down.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- existing\n"), 0644))
	}

	mf, err := CreateMigration(dir, "add items", "Shop items")
	require.NoError(t, err)
	assert.Equal(t, "000004", mf.Version)
}

func TestCreateMigrationCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(dir, "create users", "Accounts")
	require.NoError(t, err)

	_, err = os.Stat(mf.UpPath)
	assert.NoError(t, err)
	_, err = os.Stat(mf.DownPath)
	assert.NoError(t, err)
}

func TestListMigrations(t *testing.T) {
	t.Run("returns pair base names", func(t *testing.T) {
		dir := t.TempDir()
		files := []string{
			"000001_create_users.up.sql",
			"000001_create_users.down.sql",
			"000002_create_classes.up.sql",
			"000002_create_classes.down.sql",
		}
		for _, name := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("--\n"), 0644))
		}

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"000001_create_users", "000002_create_classes"}, migrations)
	})

	t.Run("empty directory", func(t *testing.T) {
		migrations, err := ListMigrations(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "missing"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("ignores non-migration files and directories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.sql"), []byte("--"), 0644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_create_users.up.sql"), []byte("--"), 0644))

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"000001_create_users"}, migrations)
	})
}

package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpenDurable_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "datav.db")

	s, err := OpenDurable(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	require.True(t, tableExists(t, s.DB(), "metadata"))
	require.True(t, tableExists(t, s.DB(), "goose_db_version"))
}

func TestOpenDurable_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "datav.db")

	s, err := OpenDurable(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "datav_token", "remembered"))
	require.NoError(t, s.Close())

	s, err = OpenDurable(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	v, found, err := s.Get(ctx, "datav_token")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "remembered", v)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, err := OpenDurable(ctx, filepath.Join(t.TempDir(), "datav.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, RunMigrations(ctx, s.DB()))
	require.NoError(t, RunMigrations(ctx, s.DB()))
}

func TestOpenEphemeral_IsPrivatePerScope(t *testing.T) {
	ctx := context.Background()

	a, err := OpenEphemeral(ctx)
	require.NoError(t, err)
	defer a.Close()
	b, err := OpenEphemeral(ctx)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Set(ctx, "datav_token", "A"))

	_, found, err := b.Get(ctx, "datav_token")
	require.NoError(t, err)
	require.False(t, found, "in-memory scopes must not share data")

	v, found, err := a.Get(ctx, "datav_token")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "A", v)
}

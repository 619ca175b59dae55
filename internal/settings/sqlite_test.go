package settings

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestSQLiteBackend_LoadEmpty(t *testing.T) {
	backend, err := NewSQLiteBackend(setupTestDB(t), PluginID)
	require.NoError(t, err)

	data, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSQLiteBackend_StoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	backend, err := NewSQLiteBackend(db, PluginID)
	require.NoError(t, err)
	ctx := context.Background()

	store := NewStore(backend)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Update(ctx, func(s *Settings) error {
		s.APIKey = "abc"
		return nil
	}))
	require.NoError(t, store.Update(ctx, func(s *Settings) error {
		s.OverviewLength = 80
		return nil
	}))

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM plugin_data").Scan(&rows))
	assert.Equal(t, 1, rows, "save overwrites the previous blob")

	reloaded := NewStore(backend)
	require.NoError(t, reloaded.Load(ctx))
	got := reloaded.Snapshot()
	assert.Equal(t, "abc", got.APIKey)
	assert.Equal(t, 80, got.OverviewLength)
	assert.Equal(t, "zh", got.Language)
}

func TestSQLiteBackend_IsolatedByPlugin(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	a, err := NewSQLiteBackend(db, "a")
	require.NoError(t, err)
	b, err := NewSQLiteBackend(db, "b")
	require.NoError(t, err)

	require.NoError(t, a.Save(ctx, []byte(`language = "en"`)))

	data, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_GetAbsent(t *testing.T) {
	r := newTestRepo(t)
	v, err := r.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteRepository_SetGetOverwrite(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "session", []byte("one")))
	v, err := r.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), v)

	require.NoError(t, r.Set(ctx, "session", []byte("two")))
	v, err = r.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "session", []byte("x")))
	require.NoError(t, r.Delete(ctx, "session"))

	v, err := r.Get(ctx, "session")
	require.NoError(t, err)
	assert.Nil(t, v)

	// deleting again is a no-op
	require.NoError(t, r.Delete(ctx, "session"))
}

func TestSQLiteRepository_Clear(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))
	require.NoError(t, r.Clear(ctx))

	for _, k := range []string{"a", "b"} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
}

func TestInitDatabase_FileBacked(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kiosk.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	r := NewSQLiteRepository(db)
	require.NoError(t, r.Set(ctx, "k", []byte("v")))
	require.NoError(t, db.Close())

	// data survives reopening, unlike the in-memory scope
	db2, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db2.Close()

	v, err := NewSQLiteRepository(db2).Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

package session

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katlegop/baacafe-kiosk/internal/logging"
	"github.com/katlegop/baacafe-kiosk/internal/models"
	"github.com/katlegop/baacafe-kiosk/internal/storage"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func newTestStore(t *testing.T) (*Store, storage.Repository, storage.Repository) {
	t.Helper()
	ctx := context.Background()

	durableDB, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { durableDB.Close() })

	ephemeralDB, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { ephemeralDB.Close() })

	durable := storage.NewSQLiteRepository(durableDB)
	ephemeral := storage.NewSQLiteRepository(ephemeralDB)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return NewStore(durable, ephemeral, log), durable, ephemeral
}

func TestLoadAccounts_EmptyWhenAbsent(t *testing.T) {
	s, _, _ := newTestStore(t)
	accounts := s.LoadAccounts(context.Background())
	assert.Empty(t, accounts)
}

func TestLoadAccounts_EmptyWhenCorrupt(t *testing.T) {
	s, durable, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, durable.Set(ctx, "accounts", []byte("{not json")))
	assert.Empty(t, s.LoadAccounts(ctx))
}

func TestSaveAndLoadAccounts(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	acc := models.NewAccount("Alice", "a@x.com", "secret")
	require.NoError(t, s.SaveAccounts(ctx, []models.Account{acc}))

	got := s.LoadAccounts(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "a@x.com", got[0].Email)
	assert.Equal(t, acc.ID, got[0].ID)
}

func TestRestoreSession_NoSession(t *testing.T) {
	s, _, _ := newTestStore(t)
	assert.Nil(t, s.RestoreSession(context.Background()))
}

func TestPersistAndRestoreSession(t *testing.T) {
	tests := []struct {
		name    string
		durable bool
	}{
		{name: "durable scope", durable: true},
		{name: "ephemeral scope", durable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestStore(t)
			ctx := context.Background()

			acc := models.NewAccount("Alice", "a@x.com", "secret")
			require.NoError(t, s.PersistSession(ctx, acc, tt.durable))

			got := s.RestoreSession(ctx)
			require.NotNil(t, got)
			assert.Equal(t, acc.Email, got.Email)
		})
	}
}

func TestRestoreSession_DurableWinsOverEphemeral(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	old := models.NewAccount("Old", "old@x.com", "p1")
	fresh := models.NewAccount("Fresh", "fresh@x.com", "p2")

	// a durable entry left behind by an earlier remember-me login is not
	// cleared by a later ephemeral login, and takes precedence on restore
	require.NoError(t, s.PersistSession(ctx, old, true))
	require.NoError(t, s.PersistSession(ctx, fresh, false))

	got := s.RestoreSession(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "old@x.com", got.Email)
}

func TestRestoreSession_CorruptTreatedAsAbsent(t *testing.T) {
	s, durable, ephemeral := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, durable.Set(ctx, "session", []byte("???")))
	assert.Nil(t, s.RestoreSession(ctx))

	// a corrupt durable entry must not mask a valid ephemeral one
	acc := models.NewAccount("Alice", "a@x.com", "secret")
	data := mustJSON(t, acc)
	require.NoError(t, ephemeral.Set(ctx, "session", data))

	got := s.RestoreSession(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestClearSession_BothScopes(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	acc := models.NewAccount("Alice", "a@x.com", "secret")
	require.NoError(t, s.PersistSession(ctx, acc, true))
	require.NoError(t, s.PersistSession(ctx, acc, false))

	require.NoError(t, s.ClearSession(ctx))
	assert.Nil(t, s.RestoreSession(ctx))

	// idempotent
	require.NoError(t, s.ClearSession(ctx))
}

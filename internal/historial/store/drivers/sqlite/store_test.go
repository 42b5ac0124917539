package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/internal/historial/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.KV().Get(ctx, "user")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.KV().Put(ctx, "user", `{"id":"1"}`))
	require.NoError(t, s.KV().Put(ctx, "user", `{"id":"2"}`))

	v, err := s.KV().Get(ctx, "user")
	require.NoError(t, err)
	require.Equal(t, `{"id":"2"}`, v)

	require.NoError(t, s.KV().Put(ctx, "accessLogs", `[]`))
	keys, err := s.KV().Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"accessLogs", "user"}, keys)

	require.NoError(t, s.KV().Delete(ctx, "user"))
	require.NoError(t, s.KV().Delete(ctx, "user"))
	_, err = s.KV().Get(ctx, "user")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	t.Run("commit", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.KV().Put(ctx, "k", "committed")
		})
		require.NoError(t, err)

		v, err := s.KV().Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, "committed", v)
	})

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.KV().Put(ctx, "k", "discarded"))
			return boom
		})
		require.ErrorIs(t, err, boom)

		v, err := s.KV().Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, "committed", v)
	})

	t.Run("nested", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.KV().Put(ctx, "patients", `[{"id":"p1"}]`))
	require.NoError(t, s.Close())

	s, err = sqlite.NewStore(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.ApplyMigrations())

	v, err := s.KV().Get(ctx, "patients")
	require.NoError(t, err)
	require.Equal(t, `[{"id":"p1"}]`, v)
}

package snapshots

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:snapshots?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, InitSchema(ctx, db))
	_, err = db.ExecContext(ctx, `DELETE FROM snapshots`)
	require.NoError(t, err)

	return NewSQLiteRepository(db)
}

func TestGet_Absent(t *testing.T) {
	r := setupRepo(t)

	s, err := r.Get(context.Background(), KindWallets)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestPutGet_Fresh(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	payload := []byte(`{"wallets":[{"currency":"NGN","balance":400000}]}`)
	require.NoError(t, r.Put(ctx, KindWallets, payload))

	s, err := r.Get(ctx, KindWallets)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, payload, s.Payload)
	assert.False(t, s.Stale)
	assert.False(t, s.FetchedAt.IsZero())
}

func TestMarkStale_PayloadStaysReadable(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, KindWallets, []byte(`{}`)))
	require.NoError(t, r.Put(ctx, KindTransactions, []byte(`[]`)))
	require.NoError(t, r.MarkStale(ctx, KindWallets, KindTransactions))

	for _, kind := range []Kind{KindWallets, KindTransactions} {
		s, err := r.Get(ctx, kind)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.True(t, s.Stale)
		assert.NotEmpty(t, s.Payload)
	}
}

func TestPut_ResetsStale(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, KindWallets, []byte(`old`)))
	require.NoError(t, r.MarkStale(ctx, KindWallets))
	require.NoError(t, r.Put(ctx, KindWallets, []byte(`new`)))

	s, err := r.Get(ctx, KindWallets)
	require.NoError(t, err)
	assert.False(t, s.Stale, "a re-fetch replaces the stale mirror")
	assert.Equal(t, []byte(`new`), s.Payload)
}

func TestClear(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, KindWallets, []byte(`{}`)))
	require.NoError(t, r.Clear(ctx))

	s, err := r.Get(ctx, KindWallets)
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, r.Clear(ctx), "clear is idempotent")
}

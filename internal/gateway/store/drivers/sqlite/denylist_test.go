package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/domain"
	"github.com/casadometal/vitrine/internal/gateway/store/drivers/sqlite"
	"github.com/casadometal/vitrine/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestDenyAndLookup(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	token := domain.DeniedToken{
		ID:          idx.New().String(),
		Fingerprint: "fp-aaa",
		DeniedAt:    now,
		ExpiresAt:   now.Add(time.Hour),
	}
	require.NoError(t, st.DeniedTokens().Deny(ctx, token))

	denied, err := st.DeniedTokens().IsDenied(ctx, "fp-aaa", now)
	require.NoError(t, err)
	require.True(t, denied)

	denied, err = st.DeniedTokens().IsDenied(ctx, "fp-bbb", now)
	require.NoError(t, err)
	require.False(t, denied)
}

func TestDenyIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	for range 3 {
		err := st.DeniedTokens().Deny(ctx, domain.DeniedToken{
			ID:          idx.New().String(),
			Fingerprint: "fp-repetida",
			DeniedAt:    now,
			ExpiresAt:   now.Add(time.Hour),
		})
		require.NoError(t, err)
	}

	denied, err := st.DeniedTokens().IsDenied(ctx, "fp-repetida", now)
	require.NoError(t, err)
	require.True(t, denied)
}

func TestExpiredEntriesStopDenying(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, st.DeniedTokens().Deny(ctx, domain.DeniedToken{
		ID:          idx.New().String(),
		Fingerprint: "fp-curta",
		DeniedAt:    now,
		ExpiresAt:   now.Add(time.Minute),
	}))

	denied, err := st.DeniedTokens().IsDenied(ctx, "fp-curta", now.Add(2*time.Minute))
	require.NoError(t, err)
	require.False(t, denied)
}

func TestDeleteExpired(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, st.DeniedTokens().Deny(ctx, domain.DeniedToken{
		ID: idx.New().String(), Fingerprint: "fp-velha", DeniedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, st.DeniedTokens().Deny(ctx, domain.DeniedToken{
		ID: idx.New().String(), Fingerprint: "fp-viva", DeniedAt: now, ExpiresAt: now.Add(time.Hour),
	}))

	removed, err := st.DeniedTokens().DeleteExpired(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	denied, err := st.DeniedTokens().IsDenied(ctx, "fp-viva", now)
	require.NoError(t, err)
	require.True(t, denied)
}

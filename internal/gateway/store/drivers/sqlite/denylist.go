package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/domain"
)

type deniedTokensRepo struct {
	db *sql.DB
}

func (r *deniedTokensRepo) Deny(ctx context.Context, t domain.DeniedToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO denied_tokens (id, fingerprint, denied_at, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (fingerprint) DO NOTHING`,
		t.ID,
		t.Fingerprint,
		t.DeniedAt.UTC(),
		t.ExpiresAt.UTC(),
	)
	return err
}

func (r *deniedTokensRepo) IsDenied(ctx context.Context, fingerprint string, now time.Time) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM denied_tokens
		WHERE fingerprint = ? AND expires_at > ?`,
		fingerprint,
		now.UTC(),
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *deniedTokensRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM denied_tokens WHERE expires_at <= ?`,
		now.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package cryptox_test

import (
	"testing"

	"github.com/casadometal/vitrine/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("ferro-fundido-2024")
	require.NoError(t, err)
	require.True(t, cryptox.IsPHCHash(hash))

	require.NoError(t, cryptox.VerifyPassword("ferro-fundido-2024", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("aluminio", hash), cryptox.ErrPasswordMismatch)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, bad := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$not-base64!$aGFzaA",
	} {
		require.Error(t, cryptox.VerifyPassword("x", bad))
	}
}

func TestHashesAreSalted(t *testing.T) {
	a, err := cryptox.HashPassword("segredo")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("segredo")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestFingerprintTokenIsDeterministic(t *testing.T) {
	fp := cryptox.FingerprintToken("refresh-token-abc")
	require.Len(t, fp, 43)
	require.Equal(t, fp, cryptox.FingerprintToken("refresh-token-abc"))
	require.NotEqual(t, fp, cryptox.FingerprintToken("refresh-token-abd"))
}

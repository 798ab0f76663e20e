package domain

import "time"

// Viewer is the identity resolved by presenting an access token to the
// upstream WordPress instance. It is never persisted here.
type Viewer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// TokenPair is the credential pair minted by the upstream login mutation.
// AccessToken lives in the `token` cookie, RefreshToken in `refreshToken`.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Cookie lifetimes. The access TTL tracks the upstream JWT plugin's
// five-minute token; the refresh TTL tracks its seven-day refresh token.
const (
	AccessTokenTTL  = 5 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

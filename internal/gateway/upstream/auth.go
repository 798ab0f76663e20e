package upstream

import (
	"context"

	"github.com/casadometal/vitrine/internal/gateway/domain"
)

const loginMutation = `
mutation Login($username: String!, $password: String!) {
  login(input: {username: $username, password: $password}) {
    authToken
    refreshToken
    user {
      id
      name
      email
      username
    }
  }
}`

const refreshMutation = `
mutation RefreshAuthToken($refreshToken: String!) {
  refreshJwtAuthToken(input: {jwtRefreshToken: $refreshToken}) {
    authToken
  }
}`

const viewerQuery = `
query Viewer {
  viewer {
    id
    name
    email
    username
  }
}`

type viewerNode struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (v viewerNode) toDomain() domain.Viewer {
	return domain.Viewer{ID: v.ID, Name: v.Name, Email: v.Email, Username: v.Username}
}

// Login exchanges credentials for a token pair and the viewer identity.
// Never retried: a duplicate login is harmless but masking a rejection as a
// transient error is not.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Viewer, domain.TokenPair, error) {
	var resp struct {
		Login struct {
			AuthToken    string     `json:"authToken"`
			RefreshToken string     `json:"refreshToken"`
			User         viewerNode `json:"user"`
		} `json:"login"`
	}

	err := c.do(ctx, loginMutation, map[string]any{
		"username": username,
		"password": password,
	}, "", &resp)
	if err != nil {
		return domain.Viewer{}, domain.TokenPair{}, err
	}

	pair := domain.TokenPair{
		AccessToken:  resp.Login.AuthToken,
		RefreshToken: resp.Login.RefreshToken,
	}
	return resp.Login.User.toDomain(), pair, nil
}

// RefreshAccessToken mints a new access token from a refresh token. The
// refresh token itself is not rotated by the upstream plugin.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	var resp struct {
		RefreshJwtAuthToken struct {
			AuthToken string `json:"authToken"`
		} `json:"refreshJwtAuthToken"`
	}

	err := c.do(ctx, refreshMutation, map[string]any{"refreshToken": refreshToken}, "", &resp)
	if err != nil {
		return "", err
	}
	return resp.RefreshJwtAuthToken.AuthToken, nil
}

// Viewer resolves the identity behind an access token.
func (c *Client) Viewer(ctx context.Context, accessToken string) (domain.Viewer, error) {
	var resp struct {
		Viewer viewerNode `json:"viewer"`
	}

	if err := c.do(ctx, viewerQuery, nil, accessToken, &resp); err != nil {
		return domain.Viewer{}, err
	}
	return resp.Viewer.toDomain(), nil
}

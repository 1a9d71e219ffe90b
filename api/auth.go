package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/princinho/menufront/normalizer"
)

const loginPath = "/api/admin/login"

// Login exchanges credentials for a bearer token and stores it in the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	payload, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   loginPath,
		json: map[string]string{
			"email":    strings.TrimSpace(email),
			"password": password,
		},
	})
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			apiErr.Message = "invalid email or password"
		}
		return err
	}

	token, ok := normalizer.Token(payload)
	if !ok {
		return &Error{Status: http.StatusOK, Message: "login succeeded but no token was returned"}
	}
	return c.session.SetToken(ctx, token)
}

// Logout forgets the stored token. The backend keeps no session to revoke.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

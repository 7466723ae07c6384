package client

import (
	"context"
	"net/http"
)

// Auth endpoints.
const (
	pathLogin    = "/auth/login"
	pathRegister = "/auth/register"
	pathProfile  = "/auth/profile"
)

// Login authenticates and stores the returned session. The session is the
// single writer of durable auth state, so a successful login persists
// token and user in one place.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthData, error) {
	var out AuthData
	err := c.invoke(ctx, call{
		method:         http.MethodPost,
		path:           pathLogin,
		body:           &req,
		out:            &out,
		validateOut:    true,
		successMessage: "logged in",
	})
	if err != nil {
		return AuthData{}, err
	}
	c.session.Login(out.Token, out.User)
	return out, nil
}

// Register creates an account and logs straight into it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthData, error) {
	var out AuthData
	err := c.invoke(ctx, call{
		method:         http.MethodPost,
		path:           pathRegister,
		body:           &req,
		out:            &out,
		validateOut:    true,
		successMessage: "registered",
	})
	if err != nil {
		return AuthData{}, err
	}
	c.session.Login(out.Token, out.User)
	return out, nil
}

// Profile fetches the current user and refreshes the cached copy.
func (c *Client) Profile(ctx context.Context) (User, error) {
	var out ProfileData
	err := c.invoke(ctx, call{
		method:      http.MethodGet,
		path:        pathProfile,
		out:         &out,
		validateOut: true,
	})
	if err != nil {
		return User{}, err
	}
	c.session.UpdateUser(UserPatch{Email: &out.User.Email, Role: &out.User.Role})
	return out.User, nil
}

// Logout clears the local session. Purely client-side, always succeeds.
func (c *Client) Logout() {
	c.session.Logout()
}

package client

import (
	"context"
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"
)

type AuthAPI struct{ c *Client }

// Register creates the account and stores the returned token and profile.
func (a *AuthAPI) Register(ctx context.Context, req request.RegisterRequest) (*response.AuthResponse, error) {
	var out response.AuthResponse
	if err := a.c.do(ctx, http.MethodPost, "/auth/register", noToken, req, &out); err != nil {
		return nil, err
	}
	if out.Token != "" {
		if err := a.c.session.setUser(out.Token, out.User); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (a *AuthAPI) Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error) {
	var out response.AuthResponse
	if err := a.c.do(ctx, http.MethodPost, "/auth/login", noToken, req, &out); err != nil {
		return nil, err
	}
	if out.Token != "" {
		if err := a.c.session.setUser(out.Token, out.User); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Logout only forgets the local token; the server keeps no session.
func (a *AuthAPI) Logout() error {
	return a.c.session.clearUser()
}

func (a *AuthAPI) Profile(ctx context.Context) (*response.ProfileResponse, error) {
	var out response.ProfileResponse
	if err := a.c.do(ctx, http.MethodGet, "/user/profile", userToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

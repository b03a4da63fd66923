// Package api contains the HTTP adapter for the remote account service.
package api

import (
	"context"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
)

// LoginResult is the body of a successful login response.
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// Client is the remote API surface consumed by the session store.
//
// The access token attached to authenticated calls is held by the client
// itself; the store sets and clears it as the session changes.
type Client interface {
	Close() error
	SetToken(token string)
	ClearToken()
	Login(ctx context.Context, data models.LoginData) (*LoginResult, error)
	Signup(ctx context.Context, data models.SignupData) error
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, data models.UpdateProfileData) (*models.User, error)
}

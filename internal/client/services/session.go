package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/accountcli/internal/client/api"
	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// Route is a navigation intent returned alongside a state transition. The
// store never navigates itself; the caller decides when and whether to act.
type Route string

const (
	RouteNone    Route = ""
	RouteRoot    Route = "/"
	RouteLogin   Route = "/login"
	RouteSignup  Route = "/signup"
	RouteProfile Route = "/edit-profile"
)

// SessionManager defines the session operations available to the screens.
//
// Contract:
//   - Bootstrap: resolve the initial state from the persisted token, once per
//     process. Never fails; failures resolve to the logged-out state.
//   - Login/Signup: submit credentials/registration; on success return the
//     route the UI should move to. On failure state is left untouched.
//   - Logout: client-authoritative; always ends logged out.
//   - UpdateProfile: partial update; on success the user record is replaced
//     with the server's copy.
//   - Current: snapshot of the session state.
//   - Close: release underlying client resources.
type SessionManager interface {
	Bootstrap(ctx context.Context)
	Login(ctx context.Context, data models.LoginData) (Route, error)
	Signup(ctx context.Context, data models.SignupData) (Route, error)
	Logout(ctx context.Context) Route
	UpdateProfile(ctx context.Context, data models.UpdateProfileData) error
	Current() models.AuthState
	Close(ctx context.Context) error
}

// SessionService is the concrete SessionManager backed by the remote API
// client and the local token store.
//
// State machine: BOOTSTRAPPING -> {AUTHENTICATED, UNAUTHENTICATED}, where the
// two resolved states flip between each other via Login/Logout and there is
// no way back to BOOTSTRAPPING.
type SessionService struct {
	client api.Client
	tokens *TokenStore
	log    logging.Logger

	mu    sync.Mutex
	state models.AuthState
}

func NewSessionService(client api.Client, tokens *TokenStore, log logging.Logger) *SessionService {
	return &SessionService{
		client: client,
		tokens: tokens,
		log:    log,
		state:  models.AuthState{IsLoading: true},
	}
}

// setState applies a resolved state. IsAuthenticated is derived, never set
// directly, which keeps the invariant
// IsAuthenticated == (User != nil && Token != "") true for every transition.
func (s *SessionService) setState(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.AuthState{
		User:            user,
		Token:           token,
		IsLoading:       false,
		IsAuthenticated: user != nil && token != "",
	}
}

// Current returns a snapshot of the session state.
func (s *SessionService) Current() models.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Bootstrap resolves the initial session state from the persisted token.
// Without a token it goes straight to logged-out and issues no network call.
// With one, the profile fetch decides: success authenticates, any failure
// discards the token and resolves to logged-out. Errors are swallowed here —
// a failed bootstrap is indistinguishable from never having logged in.
func (s *SessionService) Bootstrap(ctx context.Context) {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted token", "error", err)
		s.setState(nil, "")
		return
	}
	if token == "" {
		s.setState(nil, "")
		return
	}

	s.client.SetToken(token)

	user, err := s.client.GetProfile(ctx)
	if err != nil {
		s.log.Warn(ctx, "persisted token rejected, starting logged out", "error", err)
		if err := s.tokens.Clear(ctx); err != nil {
			s.log.Error(ctx, "failed to clear persisted token", "error", err)
		}
		s.client.ClearToken()
		s.setState(nil, "")
		return
	}

	s.setState(user, token)
}

// Login authenticates against the server. On success the token is persisted,
// the state transition is applied, and only then is the navigation intent
// returned, so any observer of the session sees the new state before the UI
// moves. On failure the session is left untouched.
func (s *SessionService) Login(ctx context.Context, data models.LoginData) (Route, error) {
	result, err := s.client.Login(ctx, data)
	if err != nil {
		return RouteNone, err
	}

	s.client.SetToken(result.AccessToken)
	if err := s.tokens.Save(ctx, result.AccessToken); err != nil {
		// The in-memory session is still valid; only restarts are affected.
		s.log.Error(ctx, "failed to persist token", "error", err)
	}

	s.setState(result.User, result.AccessToken)
	return RouteProfile, nil
}

// Signup registers a new account. The account is not auto-logged-in: on
// success the session is untouched and the caller is pointed at the login
// screen.
func (s *SessionService) Signup(ctx context.Context, data models.SignupData) (Route, error) {
	if err := s.client.Signup(ctx, data); err != nil {
		return RouteNone, err
	}
	return RouteLogin, nil
}

// Logout ends the session. The remote invalidation call is best-effort: its
// failure is logged and never blocks the local transition. Calling Logout on
// an already logged-out session is a no-op ending in the same state.
func (s *SessionService) Logout(ctx context.Context) Route {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "remote logout failed", "error", err)
	}

	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted token", "error", err)
	}
	s.client.ClearToken()
	s.setState(nil, "")
	return RouteLogin
}

// UpdateProfile submits a partial update. On success the user record is
// replaced wholly with the server's copy while the token stays as is.
func (s *SessionService) UpdateProfile(ctx context.Context, data models.UpdateProfileData) error {
	user, err := s.client.UpdateProfile(ctx, data)
	if err != nil {
		return err
	}

	s.setState(user, s.Current().Token)
	return nil
}

// Close releases resources held by the underlying API client.
func (s *SessionService) Close(ctx context.Context) error {
	return s.client.Close()
}

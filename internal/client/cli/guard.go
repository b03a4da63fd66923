package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/client/services"
)

// Decision is the outcome of a route guard: render the screen, redirect to
// another route, or neither — the session is still resolving and the caller
// shows a placeholder.
type Decision struct {
	Render   bool
	Redirect services.Route
}

// guestOnly protects the login and signup screens: an authenticated user is
// sent to the profile screen instead and the guarded screen never renders.
func guestOnly(st models.AuthState) Decision {
	if st.IsLoading {
		return Decision{}
	}
	if st.IsAuthenticated {
		return Decision{Redirect: services.RouteProfile}
	}
	return Decision{Render: true}
}

// authOnly protects the profile screen: without a session the user is sent
// to the login screen.
func authOnly(st models.AuthState) Decision {
	if st.IsLoading {
		return Decision{}
	}
	if !st.IsAuthenticated {
		return Decision{Redirect: services.RouteLogin}
	}
	return Decision{Render: true}
}

// rootRedirect is the landing route: it has no content of its own and both
// resolved branches redirect.
func rootRedirect(st models.AuthState) Decision {
	if st.IsLoading {
		return Decision{}
	}
	if st.IsAuthenticated {
		return Decision{Redirect: services.RouteProfile}
	}
	return Decision{Redirect: services.RouteLogin}
}

func guardFor(route services.Route) func(models.AuthState) Decision {
	switch route {
	case services.RouteLogin, services.RouteSignup:
		return guestOnly
	case services.RouteProfile:
		return authOnly
	default:
		return rootRedirect
	}
}

// Navigate resolves the guard of route against the current session state and
// runs the screen it lands on. A redirect is followed exactly once and not
// retried: every guard redirects to a route whose own guard renders under
// the same state.
func (a *App) Navigate(ctx context.Context, route services.Route) {
	for hops := 0; hops < 2; hops++ {
		d := guardFor(route)(a.session.Current())
		if d.Redirect != services.RouteNone {
			route = d.Redirect
			continue
		}
		if !d.Render {
			fmt.Fprintln(a.out, "Loading...")
			return
		}
		a.runScreen(ctx, route)
		return
	}
}

func (a *App) runScreen(ctx context.Context, route services.Route) {
	switch route {
	case services.RouteLogin:
		_ = a.LoginScreen(ctx)
	case services.RouteSignup:
		_ = a.SignupScreen(ctx)
	case services.RouteProfile:
		_ = a.ProfileScreen(ctx)
	}
}

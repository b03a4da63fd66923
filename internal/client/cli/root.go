package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/accountcli/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// replApp defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type replApp interface {
	isLoggedIn() bool
	Navigate(ctx context.Context, route services.Route)
	Whoami()
	Logout(ctx context.Context)
}

func (a *App) getStatus() string {
	st := a.session.Current()
	if st.IsAuthenticated {
		return fmt.Sprintf("(%s)", st.User.Username)
	}
	return ""
}

// Root bootstraps the session, resolves the landing route and then hands
// control to the command loop.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the account client (type 'help' for commands)")

	a.session.Bootstrap(ctx)
	a.Navigate(ctx, services.RouteRoot)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Screen commands go through Navigate, so the route guards decide what the
// user actually gets: "login" while logged in lands on the profile screen,
// "profile" while logged out lands on the login screen.
func runREPL(ctx context.Context, a replApp, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("acc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			a.Navigate(ctx, services.RouteLogin)

		case "signup":
			a.Navigate(ctx, services.RouteSignup)

		case "profile", "edit":
			a.Navigate(ctx, services.RouteProfile)

		case "whoami":
			a.Whoami()

		case "logout":
			a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

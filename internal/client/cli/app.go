package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/client/api"
	"github.com/dmitrijs2005/accountcli/internal/client/config"
	"github.com/dmitrijs2005/accountcli/internal/client/services"
	"github.com/dmitrijs2005/accountcli/internal/client/storage"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// App wires the session store, the API client and the terminal screens
// together. One App is created per process.
type App struct {
	config  *config.Config
	session services.SessionManager
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointURL, c.RequestTimeout, log)
	tokens := services.NewTokenStore(db, c.TokenTTL)
	session := services.NewSessionService(apiClient, tokens, log)

	return &App{
		config:  c,
		session: session,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	a.Root(ctx)
}

func (a *App) Close(ctx context.Context) {
	if err := a.session.Close(ctx); err != nil {
		a.log.Warn(ctx, "failed to close api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "failed to close database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().IsAuthenticated
}

// Logout ends the session and follows the returned navigation intent.
func (a *App) Logout(ctx context.Context) {
	route := a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	a.Navigate(ctx, route)
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/trackcli/internal/client/client"
	"github.com/dmitrijs2005/trackcli/internal/client/config"
	"github.com/dmitrijs2005/trackcli/internal/client/screens"
	"github.com/dmitrijs2005/trackcli/internal/client/services"
	"github.com/dmitrijs2005/trackcli/internal/client/session"
	"github.com/dmitrijs2005/trackcli/internal/logging"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	session  *session.State
	messages screens.Messages
	log      logging.Logger
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer

	mu    sync.Mutex
	route string
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:   c,
		auth:     services.NewAuthService(apiClient, db, log),
		session:  session.NewState(),
		messages: screens.DefaultMessages,
		log:      log,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		route:    screens.RouteLogin,
	}, nil
}

// Navigate implements screens.Navigator.
func (a *App) Navigate(route string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.route != route {
		a.log.Debug(context.Background(), "navigate", "from", a.route, "to", route)
		a.route = route
	}
}

func (a *App) Route() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

// status is shown in the prompt, e.g. "(/ ann@example.com)".
func (a *App) status() string {
	s := a.Route()
	if u := a.session.User(); u != nil {
		s += " " + u.Email
	}
	return fmt.Sprintf("(%s)", s)
}

// Run loads the server announcement and blocks in the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	a.loadAnnouncement(ctx)

	printlnFn("Welcome to trackcli (type 'help' for commands)")
	_ = a.ShowAnnouncement(ctx)

	runREPL(ctx, a, a.status, a.reader)
}

// loadAnnouncement fills the session announcement. Failures are not fatal.
func (a *App) loadAnnouncement(ctx context.Context) {
	srv, err := a.auth.ServerInfo(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not load server info", "error", err)
		return
	}
	a.session.SetAnnouncement(srv.Announcement)
}

func (a *App) close(ctx context.Context) {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "closing database", "error", err)
	}
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/avillagran/boletera/internal/client/api"
	"github.com/avillagran/boletera/internal/client/config"
	"github.com/avillagran/boletera/internal/client/services"
	"github.com/avillagran/boletera/internal/client/session"
	"github.com/avillagran/boletera/internal/client/store"
	"github.com/avillagran/boletera/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the HTTP client, the domain services and the session manager
// together and carries the interactive state of one CLI run.
type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Manager
	auth    services.AuthService
	users   services.UsersService
	trips   services.TripsService
	tickets services.TicketsService
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.New(c.BaseURL, c.RequestTimeout, log)

	auth := services.NewAuthService(apiClient)
	sess := session.NewManager(auth, db, log)
	apiClient.SetTokenSource(sess)

	return &App{
		config:  c,
		db:      db,
		session: sess,
		auth:    auth,
		users:   services.NewUsersService(apiClient),
		trips:   services.NewTripsService(apiClient),
		tickets: services.NewTicketsService(apiClient),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and hands control to the REPL. It
// returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.session.Rehydrate(ctx)
	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// statusLine is the prompt suffix: the logged-in user's email, or "guest".
func (a *App) statusLine() string {
	snap := a.session.Snapshot()
	switch snap.Status {
	case session.StatusAuthenticated:
		return snap.User.Email
	case session.StatusLoading:
		return "..."
	default:
		return "guest"
	}
}

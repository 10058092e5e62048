package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dkarpovs/libshelf/internal/client/client"
	"github.com/dkarpovs/libshelf/internal/client/config"
	"github.com/dkarpovs/libshelf/internal/client/repositories/keystore"
	"github.com/dkarpovs/libshelf/internal/client/services"
	"github.com/dkarpovs/libshelf/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	session *services.SessionStore
	api     client.Client
	reader  *bufio.Reader
	log     logging.Logger
}

// NewApp wires the client: local database, session store, and HTTP gateway.
// The session is initialized here, before the REPL renders anything, so the
// first prompt already reflects the restored auth state.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	db, err := keystore.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	session := services.NewSessionStore(db, log)
	session.Initialize(ctx)
	if msg := session.LastError(); msg != "" {
		log.Warn(ctx, "session restore problem", "detail", msg)
	}

	api := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, session, session, log)

	return &App{
		config:  c,
		session: session,
		api:     api,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

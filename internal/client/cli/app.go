package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/payego/payego-cli/internal/client/api"
	"github.com/payego/payego-cli/internal/client/config"
	"github.com/payego/payego-cli/internal/client/nav"
	"github.com/payego/payego-cli/internal/client/repositories/snapshots"
	"github.com/payego/payego-cli/internal/client/services"
	"github.com/payego/payego-cli/internal/client/session"
	"github.com/payego/payego-cli/internal/logging"
)

type App struct {
	config  *config.Config
	auth    services.AuthService
	wallet  services.WalletService
	session session.Store
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
	db      *sql.DB
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := snapshots.Open(ctx, filepath.Join(cfg.DataDir, "snapshots.db"))
	if err != nil {
		log.Error(ctx, "initializing snapshot cache", "error", err)
		return nil, err
	}

	cache := snapshots.NewSQLiteRepository(db)
	store := session.NewStore(cfg.DataDir)
	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, store, log)

	return &App{
		config:  cfg,
		auth:    services.NewAuthService(client, store, cache, log),
		wallet:  services.NewWalletService(client, cache, log),
		session: store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
		db:      db,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.LoggedIn()
}

// navigate applies a resolved destination. The session wipe happens here and
// nowhere else, so expired credentials are cleaned up the same way no matter
// which screen tripped over them.
func (a *App) navigate(ctx context.Context, dest nav.Destination) {
	if dest.ClearSession {
		if err := a.session.Clear(); err != nil {
			a.log.Warn(ctx, "clearing session", "error", err)
		}
	}

	switch dest.Route {
	case nav.RouteStay:
		if dest.Inline != "" {
			fmt.Fprintln(a.out, dest.Inline)
		}
	case nav.RouteLogin:
		fmt.Fprintln(a.out, "Session expired. Log back in to continue.")
	case nav.RouteDashboard, nav.RouteSuccess:
		a.Dashboard(ctx)
	case nav.RouteBanks:
		a.Banks(ctx)
	case nav.RouteAddBank:
		a.AddBank(ctx)
	}
}

package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/vltrn/datav/internal/client/client"
	"github.com/vltrn/datav/internal/client/config"
	"github.com/vltrn/datav/internal/client/services"
	"github.com/vltrn/datav/internal/client/session"
	"github.com/vltrn/datav/internal/client/storage"
	"github.com/vltrn/datav/internal/common"
	"github.com/vltrn/datav/internal/filex"
	"github.com/vltrn/datav/internal/logging"
)

// DatabaseFile is the durable scope's file inside the data directory.
const DatabaseFile = "datav.db"

// sessionState is the read side of session.Store the REPL needs.
type sessionState interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	RememberedEmail(ctx context.Context) (string, error)
	User(ctx context.Context) (json.RawMessage, error)
	TokenClaims(ctx context.Context) (*session.Claims, error)
}

type App struct {
	config    *config.Config
	logger    logging.Logger
	session   sessionState
	auth      services.AuthService
	projects  services.ProjectService
	files     services.FileService
	dashboard services.DashboardService
	reader    *bufio.Reader
	out       io.Writer
	expired   atomic.Bool
	closers   []io.Closer
}

// NewApp opens local storage under c.DataDir and builds the API services
// for the configured variant.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	variant, err := services.ParseVariant(c.Variant)
	if err != nil {
		return nil, err
	}

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}

	durable, err := storage.OpenDurable(ctx, filepath.Join(dataDir, DatabaseFile))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	ephemeral, err := storage.OpenEphemeral(ctx)
	if err != nil {
		_ = durable.Close()
		return nil, err
	}

	store := session.NewStore(ephemeral, durable)
	a := &App{
		config:  c,
		logger:  logger,
		session: store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closers: []io.Closer{ephemeral, durable},
	}

	apiClient, err := client.NewHTTPClient(c.BaseURL(), store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
		client.WithSessionExpiredHandler(a.onSessionExpired),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.useServices(services.New(apiClient, store, variant))
	return a, nil
}

func (a *App) useServices(s *services.Services) {
	a.auth = s.Auth
	a.projects = s.Projects
	a.files = s.Files
	a.dashboard = s.Dashboard
}

// Close releases both persistence scopes. The session scope's data is lost.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintf(a.out, "%s CLI %s (type 'help' for commands)\n", common.AppName, common.AppVersion)
	if a.isLoggedIn(ctx) {
		fmt.Fprintln(a.out, "Welcome back!")
	}
	runREPL(ctx, a, a.status, a.reader)
}

// onSessionExpired is the API client's redirect signal. The REPL picks it
// up after the current command and sends the user to login.
func (a *App) onSessionExpired(ctx context.Context) {
	a.expired.Store(true)
	a.logger.Warn(ctx, "session expired")
}

func (a *App) takeSessionExpired() bool {
	return a.expired.Swap(false)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	ok, err := a.session.IsAuthenticated(ctx)
	if err != nil {
		a.logger.Error(ctx, "session read error", "error", err)
		return false
	}
	return ok
}

var errNotLoggedIn = errors.New("please log in first")

// requireAuth guards commands that need a session.
func (a *App) requireAuth(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return errNotLoggedIn
	}
	return nil
}

func (a *App) status() string {
	ctx := context.Background()
	if !a.isLoggedIn(ctx) {
		return ""
	}
	raw, err := a.session.User(ctx)
	if err != nil || raw == nil {
		return "(logged in)"
	}
	var u struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(raw, &u) != nil || u.Email == "" {
		return "(logged in)"
	}
	return "(" + u.Email + ")"
}

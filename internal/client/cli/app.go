package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/findash/internal/client/assistant"
	"github.com/dmitrijs2005/findash/internal/client/assistant/gemini"
	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/config"
	"github.com/dmitrijs2005/findash/internal/client/pages"
	"github.com/dmitrijs2005/findash/internal/client/router"
	"github.com/dmitrijs2005/findash/internal/client/services"
	"github.com/dmitrijs2005/findash/internal/client/storage"
	"github.com/dmitrijs2005/findash/internal/client/tokenstore"
	"github.com/dmitrijs2005/findash/internal/client/ui"
	"github.com/dmitrijs2005/findash/internal/filex"
	"github.com/dmitrijs2005/findash/internal/logging"
)

// App wires the client together. Session, router and screen are shared by
// reference; the REPL is the only goroutine that renders.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	store    tokenstore.Store
	api      client.API
	session  *services.Session
	router   *router.Router
	registry *pages.Registry
	screen   *pages.Screen
	bridge   *assistant.Bridge
	theme    ui.Theme
	reader   *bufio.Reader

	views     <-chan router.View
	states    <-chan services.State
	closers   []func()
	logCloser io.Closer
}

// NewApp opens the local database under the data directory and builds every
// component. The assistant is created here too; if that fails the transcript
// says so and the rest of the client works normally.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	dir, err := filex.EnsureDataDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	c.DataDir = dir

	logOut, logCloser, err := openLog(c)
	if err != nil {
		return nil, err
	}
	log := logging.New(logOut, c.LogLevel)

	db, err := storage.Open(ctx, c.DBPath())
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		if logCloser != nil {
			_ = logCloser.Close()
		}
		return nil, err
	}

	store := tokenstore.NewMetadataStore(db)
	api := client.NewHTTPClient(c.APIBaseURL, store, &http.Client{Timeout: c.RequestTimeout}, log)

	a := newApp(ctx, c, log, store, api, gemini.Factory(gemini.Config{
		APIKey:            c.GenAIAPIKey,
		Model:             c.Model,
		SystemInstruction: c.SystemInstruction,
	}))
	a.db = db
	a.logCloser = logCloser
	return a, nil
}

// newApp builds the components over already opened dependencies.
func newApp(ctx context.Context, c *config.Config, log logging.Logger, store tokenstore.Store, api client.API, model assistant.ModelFactory) *App {
	a := &App{
		config:   c,
		log:      log,
		store:    store,
		api:      api,
		session:  services.NewSession(api, store, log),
		router:   router.New(""),
		registry: pages.NewRegistry(api),
		screen:   pages.NewScreen(),
		theme:    ui.DefaultTheme(),
		reader:   bufio.NewReader(os.Stdin),
	}

	transcript := assistant.NewTranscript()
	a.bridge = assistant.NewBridge(ctx, model, transcript,
		assistant.ScreenContext{Router: a.router, Screen: a.screen},
		c.ContextDelay, log.With("component", "assistant"))

	var cancelViews, cancelStates func()
	a.views, cancelViews = a.router.Subscribe()
	a.states, cancelStates = a.session.Subscribe()
	a.closers = append(a.closers, cancelViews, cancelStates, transcript.Close, a.router.Close, a.session.Close)
	return a
}

func openLog(c *config.Config) (io.Writer, io.Closer, error) {
	if c.LogFile == "" {
		return os.Stderr, nil, nil
	}
	path := c.LogFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.DataDir, path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}

// Run starts the client and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases subscriptions, the database and the log file.
func (a *App) Close() {
	for _, c := range a.closers {
		c()
	}
	a.closers = nil
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated()
}

func (a *App) googleLoginURL() string {
	return a.config.APIBaseURL + "/auth/google/login"
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/vitorsaucedo/vbank-cli/internal/client/api"
	"github.com/vitorsaucedo/vbank-cli/internal/client/config"
	"github.com/vitorsaucedo/vbank-cli/internal/client/localdb"
	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/repositories/localstore"
	"github.com/vitorsaucedo/vbank-cli/internal/client/session"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/client/workflows"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// The command surfaces the App depends on. The concrete workflow types
// satisfy them; tests provide lightweight stubs.
type authFlow interface {
	Register(ctx context.Context, req models.RegistrationRequest) error
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context)
}

type transferFlow interface {
	CheckReceiver(ctx context.Context) error
	ExecutePix(ctx context.Context) error
	KeyFieldChanged()
}

type keysFlow interface {
	KeyTypeChanged()
	CreatePixKey(ctx context.Context) error
}

// App wires the session store, the HTTP client, the navigator and the
// workflows together and drives them from a terminal REPL.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store
	forms   *ui.FormState
	nav     *ui.Navigator

	auth     authFlow
	transfer transferFlow
	keys     keysFlow

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sess := session.NewStore(localstore.NewSQLiteRepository(db), log)
	if err := sess.Hydrate(ctx); err != nil {
		log.Warn(ctx, "failed to restore stored session", "error", err)
	}

	forms := ui.NewFormState()
	renderer := ui.NewTermRenderer(os.Stdout, forms)
	nav := ui.NewNavigator(renderer)

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, sess, log)

	flows := workflows.NewSet(workflows.Params{
		Client:                apiClient,
		Session:               sess,
		Nav:                   nav,
		Renderer:              renderer,
		Inputs:                forms,
		Log:                   log,
		NoticeTTL:             c.NoticeDuration,
		RegisterRedirectDelay: c.RegisterRedirectDelay,
	})

	nav.OnSectionEnter(ui.SectionHome, func(ctx context.Context) {
		_ = flows.Dashboard.LoadDashboard(ctx)
	})
	nav.OnSectionEnter(ui.SectionStatement, flows.Dashboard.LoadStatement)
	nav.OnSectionEnter(ui.SectionPixKeys, flows.Keys.LoadPixKeys)

	return &App{
		config:   c,
		log:      log,
		db:       db,
		session:  sess,
		forms:    forms,
		nav:      nav,
		auth:     flows.Auth,
		transfer: flows.Transfer,
		keys:     flows.Keys,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// Run shows the initial screen (dashboard when a stored session survived,
// login otherwise) and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if a.isLoggedIn() {
		a.nav.ShowScreen(ui.ScreenDashboard)
		a.nav.ShowSection(ctx, ui.SectionHome)
	} else {
		a.nav.ShowScreen(ui.ScreenLogin)
	}

	a.Root(ctx)
}

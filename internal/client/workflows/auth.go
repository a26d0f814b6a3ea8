package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/vitorsaucedo/vbank-cli/internal/client/api"
	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/session"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/common"
	"github.com/vitorsaucedo/vbank-cli/internal/format"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

// Auth owns registration, login and logout.
type Auth struct {
	client  api.Client
	session *session.Store
	nav     *ui.Navigator
	r       ui.Renderer
	notices *notices
	log     logging.Logger

	// redirectDelay is how long the registration success notice stays on
	// screen before switching back to the login screen. <= 0 switches
	// immediately (tests).
	redirectDelay time.Duration
}

func NewAuth(client api.Client, sess *session.Store, nav *ui.Navigator, r ui.Renderer,
	n *notices, log logging.Logger, redirectDelay time.Duration) *Auth {
	return &Auth{
		client:        client,
		session:       sess,
		nav:           nav,
		r:             r,
		notices:       n,
		log:           log,
		redirectDelay: redirectDelay,
	}
}

// Register creates an account. Document and PIN are validated locally
// (digits only) before any network call; on success the form is cleared, the
// new account number is announced and the view returns to the login screen
// after redirectDelay.
func (a *Auth) Register(ctx context.Context, req models.RegistrationRequest) error {
	req.Document = format.Digits(req.Document)
	if len(req.Document) != 11 {
		a.notices.flash(ui.FieldRegisterError, common.ErrInvalidDocument.Error())
		return common.ErrInvalidDocument
	}
	if len(format.Digits(req.TransactionPin)) != 4 {
		a.notices.flash(ui.FieldRegisterError, common.ErrInvalidPin.Error())
		return common.ErrInvalidPin
	}

	resp, err := a.client.Register(ctx, req)
	if err != nil {
		a.log.Warn(ctx, "registration failed", "error", err)
		a.notices.flash(ui.FieldRegisterError, err.Error())
		return err
	}

	a.notices.flash(ui.FieldRegisterSuccess,
		fmt.Sprintf("Account created successfully! Your account number is %s", resp.AccountNumber))
	a.r.ResetForm(ui.FormRegister)

	if a.redirectDelay > 0 {
		time.AfterFunc(a.redirectDelay, func() {
			a.nav.ShowScreen(ui.ScreenLogin)
		})
	} else {
		a.nav.ShowScreen(ui.ScreenLogin)
	}
	return nil
}

// Login exchanges credentials for a token and installs the session. The user
// profile starts as a placeholder built from the email; the first dashboard
// load fills in the real name and account data.
func (a *Auth) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		a.notices.flash(ui.FieldLoginError, err.Error())
		return err
	}

	a.session.SetSession(ctx, resp.Token, models.User{Name: creds.Email})
	a.r.ResetForm(ui.FormLogin)

	a.nav.ShowScreen(ui.ScreenDashboard)
	a.nav.ShowSection(ctx, ui.SectionHome)
	return nil
}

// Logout clears the session and returns to the login screen. Idempotent:
// logging out while logged out is a no-op with the same end state.
func (a *Auth) Logout(ctx context.Context) {
	a.session.ClearSession(ctx)
	a.r.ResetForm(ui.FormLogin)
	a.nav.ShowScreen(ui.ScreenLogin)
}

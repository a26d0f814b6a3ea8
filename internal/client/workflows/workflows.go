package workflows

import (
	"time"

	"github.com/vitorsaucedo/vbank-cli/internal/client/api"
	"github.com/vitorsaucedo/vbank-cli/internal/client/session"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

// Params collects the dependencies shared by all workflows.
type Params struct {
	Client   api.Client
	Session  *session.Store
	Nav      *ui.Navigator
	Renderer ui.Renderer
	Inputs   ui.InputReader
	Log      logging.Logger

	// NoticeTTL is how long inline notices stay visible; <= 0 keeps them
	// until replaced.
	NoticeTTL time.Duration
	// RegisterRedirectDelay is the pause before returning to the login
	// screen after a successful registration.
	RegisterRedirectDelay time.Duration
}

// Set bundles the constructed workflows behind a single entry point so the
// CLI layer wires them in one call.
type Set struct {
	Auth      *Auth
	Dashboard *Dashboard
	Transfer  *Transfer
	Keys      *KeyManagement
}

func NewSet(p Params) *Set {
	n := newNotices(p.Renderer, p.NoticeTTL)
	dash := NewDashboard(p.Client, p.Session, p.Renderer, p.Log)
	return &Set{
		Auth:      NewAuth(p.Client, p.Session, p.Nav, p.Renderer, n, p.Log, p.RegisterRedirectDelay),
		Dashboard: dash,
		Transfer:  NewTransfer(p.Client, p.Inputs, p.Renderer, n, dash, p.Log),
		Keys:      NewKeyManagement(p.Client, p.Inputs, p.Renderer, n, p.Log),
	}
}

package cli

import (
	"context"

	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
)

// Home shows the dashboard summary section, which reloads the account data.
func (a *App) Home(ctx context.Context) error {
	a.nav.ShowSection(ctx, ui.SectionHome)
	return nil
}

// Statement shows the full statement section.
func (a *App) Statement(ctx context.Context) error {
	a.nav.ShowSection(ctx, ui.SectionStatement)
	return nil
}

package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitorsaucedo/vbank-cli/internal/client/api"
	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/session"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/format"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

// recentLimit caps the home-section transaction preview.
const recentLimit = 5

// Dashboard loads the account summary, the recent-transactions preview and
// the full statement. Loads are read-only: a failed load logs the error and
// leaves the previously rendered values untouched.
type Dashboard struct {
	client  api.Client
	session *session.Store
	r       ui.Renderer
	log     logging.Logger
}

func NewDashboard(client api.Client, sess *session.Store, r ui.Renderer, log logging.Logger) *Dashboard {
	return &Dashboard{client: client, session: sess, r: r, log: log}
}

// LoadDashboard fetches the account summary, enriches the session profile
// with the data learned from it, renders the summary fields and then loads
// the recent-transactions preview.
func (d *Dashboard) LoadDashboard(ctx context.Context) error {
	dash, err := d.client.Dashboard(ctx)
	if err != nil {
		d.log.Error(ctx, "failed to load dashboard", "error", err)
		return err
	}

	d.session.UpdateUserProfile(ctx, models.User{
		Name:          dash.FullName,
		AccountNumber: dash.AccountNumber,
		Agency:        dash.Agency,
	})

	d.r.SetText(ui.FieldUserName, dash.FullName)
	d.r.SetText(ui.FieldBalance, format.Currency(dash.Balance))
	d.r.SetText(ui.FieldAccountNumber, dash.AccountNumber)
	d.r.SetText(ui.FieldAgency, dash.Agency)

	d.LoadRecentTransactions(ctx)
	return nil
}

// LoadRecentTransactions renders the first entries of the statement as a
// short preview. An empty statement and a failed load both render the
// placeholder so the home section never shows stale entries.
func (d *Dashboard) LoadRecentTransactions(ctx context.Context) {
	txs, err := d.client.Statement(ctx)
	if err != nil {
		d.log.Error(ctx, "failed to load recent transactions", "error", err)
		d.r.SetText(ui.FieldRecentTransactions, "No recent transactions")
		return
	}
	if len(txs) == 0 {
		d.r.SetText(ui.FieldRecentTransactions, "No recent transactions")
		return
	}

	if len(txs) > recentLimit {
		txs = txs[:recentLimit]
	}
	lines := make([]string, 0, len(txs))
	for _, t := range txs {
		lines = append(lines, recentLine(t))
	}
	d.r.SetText(ui.FieldRecentTransactions, strings.Join(lines, "\n"))
}

// LoadStatement renders the full statement with one detailed block per
// entry. A failed load replaces the list with an error placeholder.
func (d *Dashboard) LoadStatement(ctx context.Context) {
	txs, err := d.client.Statement(ctx)
	if err != nil {
		d.log.Error(ctx, "failed to load statement", "error", err)
		d.r.SetText(ui.FieldStatementList, "Failed to load statement")
		return
	}
	if len(txs) == 0 {
		d.r.SetText(ui.FieldStatementList, "No transactions found")
		return
	}

	lines := make([]string, 0, len(txs))
	for _, t := range txs {
		lines = append(lines, statementLine(t))
	}
	d.r.SetText(ui.FieldStatementList, strings.Join(lines, "\n"))
}

func recentLine(t models.Transaction) string {
	sign, verb := "-", "Sent"
	if t.Direction.Inbound() {
		sign, verb = "+", "Received"
	}
	return fmt.Sprintf("%s %s  %s  %s", sign, format.Currency(t.Amount), verb, format.Date(t.Date))
}

func statementLine(t models.Transaction) string {
	sign, party := "-", "To"
	if t.Direction.Inbound() {
		sign, party = "+", "From"
	}

	other := t.OtherPartyName
	if other == "" {
		other = "Not informed"
	}
	desc := t.Description
	if desc == "" {
		desc = "No description"
	}

	return fmt.Sprintf("%s %s  %s  %s: %s  %s  %s",
		sign, format.Currency(t.Amount), t.Type, party, other, desc, format.Date(t.Date))
}

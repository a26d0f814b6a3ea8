package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

var errorFields = map[Field]bool{
	FieldLoginError:    true,
	FieldRegisterError: true,
	FieldPixError:      true,
	FieldPixKeyError:   true,
}

var successFields = map[Field]bool{
	FieldRegisterSuccess: true,
	FieldPixSuccess:      true,
	FieldPixKeySuccess:   true,
}

var labeledFields = map[Field]string{
	FieldUserName:      "User",
	FieldBalance:       "Balance",
	FieldAccountNumber: "Account",
	FieldAgency:        "Agency",
}

var blockFields = map[Field]string{
	FieldRecentTransactions: "Recent transactions",
	FieldStatementList:      "Statement",
	FieldPixKeysList:        "PIX keys",
}

var receiverFields = []struct {
	field Field
	label string
}{
	{FieldReceiverName, "Name"},
	{FieldReceiverDocument, "Document"},
	{FieldReceiverBank, "Bank"},
	{FieldReceiverAgency, "Agency"},
	{FieldReceiverAccount, "Account"},
}

var screenBanners = map[Field]string{
	FieldScreenLogin:     "Login",
	FieldScreenRegister:  "Create account",
	FieldScreenDashboard: "Dashboard",
}

var sectionBanners = map[Field]string{
	FieldSectionHome:        "Home",
	FieldSectionStatement:   "Statement",
	FieldSectionPixTransfer: "PIX transfer",
	FieldSectionPixKeys:     "PIX keys",
}

// TermRenderer renders field updates as styled terminal lines. It keeps the
// last value of every field so panels (like the receiver details) can be
// printed when they become visible.
type TermRenderer struct {
	// mu guards against the notice auto-dismiss timer firing while the
	// REPL is rendering.
	mu      sync.Mutex
	out     io.Writer
	forms   *FormState
	texts   map[Field]string
	visible map[Field]bool
}

var _ Renderer = (*TermRenderer)(nil)

func NewTermRenderer(out io.Writer, forms *FormState) *TermRenderer {
	return &TermRenderer{
		out:     out,
		forms:   forms,
		texts:   make(map[Field]string),
		visible: make(map[Field]bool),
	}
}

func (r *TermRenderer) SetText(field Field, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.texts[field] = value
	if value == "" {
		return
	}

	switch {
	case errorFields[field]:
		fmt.Fprintln(r.out, errorStyle.Render(value))
	case successFields[field]:
		fmt.Fprintln(r.out, successStyle.Render(value))
	case labeledFields[field] != "":
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Render(labeledFields[field]+":"), value)
	case blockFields[field] != "":
		fmt.Fprintln(r.out, labelStyle.Render(blockFields[field]))
		fmt.Fprintln(r.out, value)
	case field == FieldKeyInfoMessage, field == FieldKeyValueHint:
		fmt.Fprintln(r.out, mutedStyle.Render(value))
	}
}

func (r *TermRenderer) SetVisible(field Field, visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.visible[field] = visible
	if !visible {
		return
	}

	if banner, ok := screenBanners[field]; ok {
		fmt.Fprintln(r.out, headerStyle.Render("== "+banner+" =="))
		return
	}
	if banner, ok := sectionBanners[field]; ok {
		fmt.Fprintln(r.out, headerStyle.Render("-- "+banner+" --"))
		return
	}
	if field == FieldReceiverInfo {
		fmt.Fprintln(r.out, labelStyle.Render("Receiver"))
		for _, rf := range receiverFields {
			fmt.Fprintf(r.out, "  %s: %s\n", rf.label, r.texts[rf.field])
		}
	}
}

func (r *TermRenderer) ResetForm(form Form) {
	r.forms.ClearForm(form)
}

// Text returns the last value set for field.
func (r *TermRenderer) Text(field Field) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.texts[field]
}

// Visible returns the last visibility set for field.
func (r *TermRenderer) Visible(field Field) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible[field]
}

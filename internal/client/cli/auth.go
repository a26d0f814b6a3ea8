package cli

import (
	"context"
	"os"

	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/common"
)

// getSimpleText, getDigits and getSecret are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getDigits     = GetDigits
	getSecret     = GetSecret
)

// Register walks the user through the account creation prompts and submits
// the registration. Secrets are wiped before returning. Validation and
// server-side failures are rendered by the workflow; the error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	a.nav.ShowScreen(ui.ScreenRegister)

	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	document, err := getDigits(a.reader, "CPF", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getSecret("Password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	pin, err := getSecret("Transaction PIN (4 digits): ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	return a.auth.Register(ctx, models.RegistrationRequest{
		FullName:       fullName,
		Document:       document,
		Email:          email,
		Password:       string(password),
		TransactionPin: string(pin),
	})
}

// Login prompts for credentials and authenticates. On success the workflow
// installs the session and switches to the dashboard, which triggers the
// first data load.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getSecret("Password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.auth.Login(ctx, models.Credentials{
		Email:    email,
		Password: string(password),
	})
}

// Logout drops the session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	return nil
}

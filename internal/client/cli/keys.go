package cli

import (
	"context"
	"os"
	"strings"

	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
)

// Keys shows the PIX keys section, which loads the registered keys.
func (a *App) Keys(ctx context.Context) error {
	a.nav.ShowSection(ctx, ui.SectionPixKeys)
	return nil
}

// NewKey runs the interactive key registration flow. Account-derived types
// (CPF, EMAIL, RANDOM) skip the value prompt entirely; the server derives
// the value from the account holder.
func (a *App) NewKey(ctx context.Context) error {
	a.nav.ShowSection(ctx, ui.SectionPixKeys)

	keyType, err := getSimpleText(a.reader, "Key type (CPF, EMAIL, PHONE, RANDOM)", os.Stdout)
	if err != nil {
		return err
	}
	a.forms.Set(ui.InputKeyType, strings.ToUpper(strings.TrimSpace(keyType)))
	a.keys.KeyTypeChanged()

	if !models.PixKeyType(a.forms.Value(ui.InputKeyType)).UsesAccountData() {
		value, err := getSimpleText(a.reader, "Key value", os.Stdout)
		if err != nil {
			return err
		}
		a.forms.Set(ui.InputKeyValue, value)
	}

	return a.keys.CreatePixKey(ctx)
}

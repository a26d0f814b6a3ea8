package cli

import (
	"context"
	"os"
	"strings"

	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/common"
)

// Transfer runs the interactive PIX transfer flow: key lookup, receiver
// confirmation, then amount/PIN entry and execution. Declining the receiver
// aborts and drops the lookup.
func (a *App) Transfer(ctx context.Context) error {
	a.nav.ShowSection(ctx, ui.SectionPixTransfer)

	key, err := getSimpleText(a.reader, "Receiver's PIX key", os.Stdout)
	if err != nil {
		return err
	}
	a.forms.Set(ui.InputPixKey, key)

	if err := a.transfer.CheckReceiver(ctx); err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, "Transfer to this receiver? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		a.transfer.KeyFieldChanged()
		return nil
	}

	amount, err := getSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	pin, err := getSecret("Transaction PIN: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	a.forms.Set(ui.InputPixAmount, amount)
	a.forms.Set(ui.InputPixDescription, description)
	a.forms.Set(ui.InputPixPin, string(pin))

	return a.transfer.ExecutePix(ctx)
}

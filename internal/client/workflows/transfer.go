package workflows

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vitorsaucedo/vbank-cli/internal/client/api"
	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/common"
	"github.com/vitorsaucedo/vbank-cli/internal/format"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

// TransferState tracks the receiver-confirmation gate: a transfer can only
// be executed after the current key has been looked up, and editing the key
// drops the confirmation.
type TransferState int

const (
	TransferIdle TransferState = iota
	TransferReceiverChecked
	TransferCompleted
)

// ErrReceiverNotChecked is returned when a transfer is attempted before the
// receiver lookup confirmed the current key.
var ErrReceiverNotChecked = errors.New("check the receiver before transferring")

// Transfer implements the PIX transfer workflow: receiver lookup, local
// validation and execution.
type Transfer struct {
	client    api.Client
	in        ui.InputReader
	r         ui.Renderer
	notices   *notices
	dashboard *Dashboard
	log       logging.Logger

	state   TransferState
	lastKey string
}

func NewTransfer(client api.Client, in ui.InputReader, r ui.Renderer,
	n *notices, dashboard *Dashboard, log logging.Logger) *Transfer {
	return &Transfer{
		client:    client,
		in:        in,
		r:         r,
		notices:   n,
		dashboard: dashboard,
		log:       log,
	}
}

func (t *Transfer) State() TransferState { return t.state }

// CheckReceiver looks up the current PIX key and shows the account holder
// behind it. If the key input changed while the lookup was in flight, the
// response belongs to a key the user no longer cares about and is discarded
// without touching the view.
func (t *Transfer) CheckReceiver(ctx context.Context) error {
	key := strings.TrimSpace(t.in.Value(ui.InputPixKey))
	if key == "" {
		t.notices.flash(ui.FieldPixError, "Enter the receiver's PIX key")
		return common.ErrEmptyPixKey
	}

	rec, err := t.client.CheckReceiver(ctx, key)

	if strings.TrimSpace(t.in.Value(ui.InputPixKey)) != key {
		t.log.Debug(ctx, "discarding stale receiver lookup", "key", key)
		return nil
	}

	if err != nil {
		t.log.Warn(ctx, "receiver lookup failed", "error", err)
		t.r.SetVisible(ui.FieldReceiverInfo, false)
		t.state = TransferIdle
		t.lastKey = ""
		t.notices.flash(ui.FieldPixError, err.Error())
		return err
	}

	t.r.SetText(ui.FieldReceiverName, rec.FullName)
	t.r.SetText(ui.FieldReceiverDocument, format.CPF(rec.Document))
	t.r.SetText(ui.FieldReceiverBank, rec.BankName)
	t.r.SetText(ui.FieldReceiverAgency, rec.Agency)
	t.r.SetText(ui.FieldReceiverAccount, rec.AccountNumber)
	t.r.SetVisible(ui.FieldReceiverInfo, true)
	t.notices.hide(ui.FieldPixError)

	t.state = TransferReceiverChecked
	t.lastKey = key
	return nil
}

// ExecutePix validates the amount and PIN locally, then sends the transfer
// to the confirmed receiver. On success the form is cleared, the receiver
// panel hidden and the dashboard refreshed; on failure the form is left
// intact so the user can correct and retry.
func (t *Transfer) ExecutePix(ctx context.Context) error {
	if t.state != TransferReceiverChecked {
		t.notices.flash(ui.FieldPixError, ErrReceiverNotChecked.Error())
		return ErrReceiverNotChecked
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(t.in.Value(ui.InputPixAmount)), 64)
	if err != nil || amount <= 0 {
		t.notices.flash(ui.FieldPixError, common.ErrInvalidAmount.Error())
		return common.ErrInvalidAmount
	}

	pin := format.Digits(t.in.Value(ui.InputPixPin))
	if len(pin) != 4 {
		t.notices.flash(ui.FieldPixError, common.ErrInvalidPin.Error())
		return common.ErrInvalidPin
	}

	req := models.TransferRequest{
		TargetKey:      t.lastKey,
		Amount:         amount,
		TransactionPin: pin,
	}
	if desc := strings.TrimSpace(t.in.Value(ui.InputPixDescription)); desc != "" {
		req.Description = &desc
	}

	receipt, err := t.client.ExecutePix(ctx, req)
	if err != nil {
		t.log.Warn(ctx, "pix transfer failed", "error", err)
		t.notices.flash(ui.FieldPixError, err.Error())
		return err
	}

	t.notices.flash(ui.FieldPixSuccess,
		fmt.Sprintf("Transfer completed successfully! ID: %s", receipt.TransactionID))
	t.r.ResetForm(ui.FormPix)
	t.r.SetVisible(ui.FieldReceiverInfo, false)
	t.state = TransferCompleted
	t.lastKey = ""

	if err := t.dashboard.LoadDashboard(ctx); err != nil {
		t.log.Warn(ctx, "dashboard refresh after transfer failed", "error", err)
	}
	return nil
}

// KeyFieldChanged drops the receiver confirmation whenever the key input is
// edited. The next transfer attempt requires a fresh lookup.
func (t *Transfer) KeyFieldChanged() {
	t.state = TransferIdle
	t.lastKey = ""
	t.r.SetVisible(ui.FieldReceiverInfo, false)
}

package workflows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorsaucedo/vbank-cli/internal/client/api"
	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/common"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

type transferFixture struct {
	client *fakeClient
	forms  *ui.FormState
	r      *fakeRenderer
	tr     *Transfer
}

func newTransferFixture(client *fakeClient) *transferFixture {
	forms := ui.NewFormState()
	r := newFakeRenderer(forms)
	log := &logging.NopLogger{}
	dash := NewDashboard(client, newTestSession(), r, log)
	n := newNotices(r, 0)
	return &transferFixture{
		client: client,
		forms:  forms,
		r:      r,
		tr:     NewTransfer(client, forms, r, n, dash, log),
	}
}

func TestTransfer_CheckReceiverRequiresKey(t *testing.T) {
	f := newTransferFixture(&fakeClient{})

	err := f.tr.CheckReceiver(context.Background())
	require.ErrorIs(t, err, common.ErrEmptyPixKey)

	assert.Empty(t, f.client.checkedKey)
	assert.Equal(t, "Enter the receiver's PIX key", f.r.text(ui.FieldPixError))
	assert.Equal(t, TransferIdle, f.tr.State())
}

func TestTransfer_CheckReceiverShowsAccountHolder(t *testing.T) {
	f := newTransferFixture(&fakeClient{
		receiverResp: &models.Receiver{
			FullName:      "Bob Lima",
			Document:      "52998224725",
			BankName:      "VBank",
			Agency:        "0001",
			AccountNumber: "98765-4",
		},
	})
	f.forms.Set(ui.InputPixKey, "bob@example.com")

	require.NoError(t, f.tr.CheckReceiver(context.Background()))

	assert.Equal(t, "bob@example.com", f.client.checkedKey)
	assert.Equal(t, "Bob Lima", f.r.text(ui.FieldReceiverName))
	assert.Equal(t, "529.982.247-25", f.r.text(ui.FieldReceiverDocument))
	assert.Equal(t, "VBank", f.r.text(ui.FieldReceiverBank))
	assert.True(t, f.r.isVisible(ui.FieldReceiverInfo))
	assert.Equal(t, TransferReceiverChecked, f.tr.State())
}

func TestTransfer_CheckReceiverDiscardsStaleResponse(t *testing.T) {
	f := newTransferFixture(&fakeClient{
		receiverResp: &models.Receiver{FullName: "Bob Lima"},
	})
	f.forms.Set(ui.InputPixKey, "old@example.com")
	f.client.onCheckReceiver = func() {
		f.forms.Set(ui.InputPixKey, "new@example.com")
	}

	require.NoError(t, f.tr.CheckReceiver(context.Background()))

	assert.Empty(t, f.r.text(ui.FieldReceiverName))
	assert.False(t, f.r.isVisible(ui.FieldReceiverInfo))
	assert.Equal(t, TransferIdle, f.tr.State())
}

func TestTransfer_CheckReceiverFailureHidesPanel(t *testing.T) {
	f := newTransferFixture(&fakeClient{
		receiverErr: &api.Error{Kind: api.KindBusiness, Status: 404, Message: "pix key not found"},
	})
	f.forms.Set(ui.InputPixKey, "nobody@example.com")

	err := f.tr.CheckReceiver(context.Background())
	require.Error(t, err)

	assert.False(t, f.r.isVisible(ui.FieldReceiverInfo))
	assert.Equal(t, "pix key not found", f.r.text(ui.FieldPixError))
	assert.Equal(t, TransferIdle, f.tr.State())
}

func TestTransfer_ExecuteRequiresCheckedReceiver(t *testing.T) {
	f := newTransferFixture(&fakeClient{})
	f.forms.Set(ui.InputPixAmount, "10")
	f.forms.Set(ui.InputPixPin, "1234")

	err := f.tr.ExecutePix(context.Background())
	require.ErrorIs(t, err, ErrReceiverNotChecked)
	assert.Empty(t, f.client.pixReq.TargetKey)
}

func checkedFixture(t *testing.T, client *fakeClient) *transferFixture {
	t.Helper()
	if client.receiverResp == nil {
		client.receiverResp = &models.Receiver{FullName: "Bob Lima"}
	}
	f := newTransferFixture(client)
	f.forms.Set(ui.InputPixKey, "bob@example.com")
	require.NoError(t, f.tr.CheckReceiver(context.Background()))
	return f
}

func TestTransfer_ExecuteValidatesAmountAndPin(t *testing.T) {
	f := checkedFixture(t, &fakeClient{})

	f.forms.Set(ui.InputPixAmount, "-5")
	f.forms.Set(ui.InputPixPin, "1234")
	require.ErrorIs(t, f.tr.ExecutePix(context.Background()), common.ErrInvalidAmount)

	f.forms.Set(ui.InputPixAmount, "abc")
	require.ErrorIs(t, f.tr.ExecutePix(context.Background()), common.ErrInvalidAmount)

	f.forms.Set(ui.InputPixAmount, "10.50")
	f.forms.Set(ui.InputPixPin, "12")
	require.ErrorIs(t, f.tr.ExecutePix(context.Background()), common.ErrInvalidPin)

	assert.Empty(t, f.client.pixReq.TargetKey)
}

func TestTransfer_ExecuteSuccessResetsFormAndRefreshesDashboard(t *testing.T) {
	f := checkedFixture(t, &fakeClient{
		pixResp:       &models.TransferReceipt{TransactionID: "tx-42"},
		dashboardResp: &models.Dashboard{FullName: "Alice", Balance: 10},
	})
	f.forms.Set(ui.InputPixAmount, "10.50")
	f.forms.Set(ui.InputPixPin, "1234")

	require.NoError(t, f.tr.ExecutePix(context.Background()))

	assert.Equal(t, "bob@example.com", f.client.pixReq.TargetKey)
	assert.InDelta(t, 10.50, f.client.pixReq.Amount, 1e-9)
	assert.Equal(t, "1234", f.client.pixReq.TransactionPin)
	assert.Nil(t, f.client.pixReq.Description)

	assert.Contains(t, f.r.text(ui.FieldPixSuccess), "tx-42")
	assert.Contains(t, f.r.resets, ui.FormPix)
	assert.Empty(t, f.forms.Value(ui.InputPixKey))
	assert.False(t, f.r.isVisible(ui.FieldReceiverInfo))
	assert.Equal(t, TransferCompleted, f.tr.State())
	assert.Equal(t, 1, f.client.dashboardCalls)
}

func TestTransfer_ExecuteSendsDescriptionWhenPresent(t *testing.T) {
	f := checkedFixture(t, &fakeClient{
		pixResp:       &models.TransferReceipt{TransactionID: "tx-1"},
		dashboardResp: &models.Dashboard{},
	})
	f.forms.Set(ui.InputPixAmount, "1")
	f.forms.Set(ui.InputPixPin, "1234")
	f.forms.Set(ui.InputPixDescription, "lunch")

	require.NoError(t, f.tr.ExecutePix(context.Background()))

	require.NotNil(t, f.client.pixReq.Description)
	assert.Equal(t, "lunch", *f.client.pixReq.Description)
}

func TestTransfer_ExecuteFailurePreservesForm(t *testing.T) {
	f := checkedFixture(t, &fakeClient{
		pixErr: &api.Error{Kind: api.KindBusiness, Status: 422, Message: "insufficient balance"},
	})
	f.forms.Set(ui.InputPixAmount, "999")
	f.forms.Set(ui.InputPixPin, "1234")

	err := f.tr.ExecutePix(context.Background())
	require.Error(t, err)

	assert.Equal(t, "insufficient balance", f.r.text(ui.FieldPixError))
	assert.Equal(t, "999", f.forms.Value(ui.InputPixAmount))
	assert.Equal(t, TransferReceiverChecked, f.tr.State())
	assert.Zero(t, f.client.dashboardCalls)
}

func TestTransfer_KeyFieldChangedDropsConfirmation(t *testing.T) {
	f := checkedFixture(t, &fakeClient{})

	f.tr.KeyFieldChanged()

	assert.Equal(t, TransferIdle, f.tr.State())
	assert.False(t, f.r.isVisible(ui.FieldReceiverInfo))

	f.forms.Set(ui.InputPixAmount, "10")
	f.forms.Set(ui.InputPixPin, "1234")
	require.ErrorIs(t, f.tr.ExecutePix(context.Background()), ErrReceiverNotChecked)
}

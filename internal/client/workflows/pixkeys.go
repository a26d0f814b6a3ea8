package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitorsaucedo/vbank-cli/internal/client/api"
	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/common"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

// phonePlaceholder is shown as the value hint for phone keys.
const phonePlaceholder = "(00) 00000-0000"

// keyInfoMessages explains, per account-derived key type, where the value
// will come from.
var keyInfoMessages = map[models.PixKeyType]string{
	models.PixKeyCPF:    "Your registered CPF will be used as the PIX key",
	models.PixKeyEmail:  "Your registered email will be used as the PIX key",
	models.PixKeyRandom: "A random key will be generated automatically",
}

// KeyManagement lists and registers PIX keys. For account-derived key types
// (CPF, EMAIL, RANDOM) the value field is hidden and the request carries a
// null value so the server derives it from the account holder.
type KeyManagement struct {
	client  api.Client
	in      ui.InputReader
	r       ui.Renderer
	notices *notices
	log     logging.Logger
}

func NewKeyManagement(client api.Client, in ui.InputReader, r ui.Renderer,
	n *notices, log logging.Logger) *KeyManagement {
	return &KeyManagement{client: client, in: in, r: r, notices: n, log: log}
}

// LoadPixKeys renders the registered keys as "TYPE  value" lines.
func (k *KeyManagement) LoadPixKeys(ctx context.Context) {
	keys, err := k.client.PixKeys(ctx)
	if err != nil {
		k.log.Error(ctx, "failed to load pix keys", "error", err)
		k.r.SetText(ui.FieldPixKeysList, "Failed to load keys")
		return
	}
	if len(keys) == 0 {
		k.r.SetText(ui.FieldPixKeysList, "No keys registered")
		return
	}

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s  %s", key.KeyType, key.KeyValue))
	}
	k.r.SetText(ui.FieldPixKeysList, strings.Join(lines, "\n"))
}

// KeyTypeChanged adjusts the key form to the selected type: account-derived
// types hide the value input and explain where the value comes from, the
// others show the input with a type-appropriate hint.
func (k *KeyManagement) KeyTypeChanged() {
	kt := k.selectedType()

	if kt.UsesAccountData() {
		k.r.SetVisible(ui.FieldKeyValueGroup, false)
		k.r.SetText(ui.FieldKeyInfoMessage, keyInfoMessages[kt])
		k.r.SetVisible(ui.FieldKeyInfoMessage, true)
		return
	}

	k.r.SetVisible(ui.FieldKeyInfoMessage, false)
	k.r.SetVisible(ui.FieldKeyValueGroup, true)
	hint := ""
	if kt == models.PixKeyPhone {
		hint = phonePlaceholder
	}
	k.r.SetText(ui.FieldKeyValueHint, hint)
}

// CreatePixKey registers a key of the selected type. Account-derived types
// always send a null value, regardless of what the value input holds; the
// remaining types require a non-empty value, checked before any network
// call. On success the form is cleared and the list refreshed.
func (k *KeyManagement) CreatePixKey(ctx context.Context) error {
	kt := k.selectedType()

	req := models.PixKeyRequest{KeyType: kt}
	if !kt.UsesAccountData() {
		value := strings.TrimSpace(k.in.Value(ui.InputKeyValue))
		if value == "" {
			k.notices.flash(ui.FieldPixKeyError, "Enter a value for the key")
			return common.ErrEmptyKeyValue
		}
		req.KeyValue = &value
	}

	if _, err := k.client.CreatePixKey(ctx, req); err != nil {
		k.log.Warn(ctx, "pix key registration failed", "error", err)
		k.notices.flash(ui.FieldPixKeyError, err.Error())
		return err
	}

	k.notices.flash(ui.FieldPixKeySuccess, "PIX key registered successfully!")
	k.r.ResetForm(ui.FormPixKey)
	k.LoadPixKeys(ctx)
	return nil
}

func (k *KeyManagement) selectedType() models.PixKeyType {
	return models.PixKeyType(strings.ToUpper(strings.TrimSpace(k.in.Value(ui.InputKeyType))))
}

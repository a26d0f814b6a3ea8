// Package api implements the vbank HTTP client: request building, bearer
// credential injection, JSON decoding and error normalization. Every failure
// surfaces as *Error so the workflows above it contain no status-specific
// branching.
package api

import (
	"context"

	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
)

// Client is the typed surface of the vbank API consumed by the workflows.
//
// Contract:
//   - Every method performs exactly one attempt, no retries.
//   - Authenticated calls carry the bearer token currently held by the
//     session store.
//   - Any failure is returned as *Error carrying a human-readable message.
type Client interface {
	Register(ctx context.Context, req models.RegistrationRequest) (*models.RegisterResponse, error)
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	Statement(ctx context.Context) ([]models.Transaction, error)
	CheckReceiver(ctx context.Context, pixKey string) (*models.Receiver, error)
	ExecutePix(ctx context.Context, req models.TransferRequest) (*models.TransferReceipt, error)
	PixKeys(ctx context.Context) ([]models.PixKey, error)
	CreatePixKey(ctx context.Context, req models.PixKeyRequest) (*models.PixKey, error)
}

// TokenSource supplies the current bearer token, or "" when the session is
// unauthenticated. *session.Store satisfies this interface.
type TokenSource interface {
	Token() string
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

const (
	contentTypeHeader   = "Content-Type"
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Request-ID"
)

// HTTPClient talks JSON over HTTP to the vbank backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger

	// newRequestID is a test seam for request correlation IDs.
	newRequestID func() string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL. A zero timeout
// means no client-side timeout (a hung request stays pending).
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		tokens:       tokens,
		log:          log,
		newRequestID: uuid.NewString,
	}
}

// send performs one request and decodes the response into out (when non-nil).
// Success is any 2xx status. Everything else comes back as *Error.
func (c *HTTPClient) send(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("build request: %v", err)}
	}

	req.Header.Set(contentTypeHeader, "application/json")
	req.Header.Set(requestIDHeader, c.newRequestID())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set(authorizationHeader, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "endpoint", endpoint, "error", err)
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "reading response failed", "method", method, "endpoint", endpoint, "error", err)
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("read response: %v", err)}
	}

	if !gjson.ValidBytes(data) {
		// Not JSON: surface the raw text, never swallow it.
		text := strings.TrimSpace(string(data))
		if text == "" {
			text = "unable to decode server response"
		}
		return &Error{Kind: KindParse, Status: resp.StatusCode, Message: text}
	}

	if resp.StatusCode/100 != 2 {
		return normalize(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: KindParse, Status: resp.StatusCode, Message: "unable to decode server response"}
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegistrationRequest) (*models.RegisterResponse, error) {
	var out models.RegisterResponse
	if err := c.send(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.send(ctx, http.MethodPost, "/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var out models.Dashboard
	if err := c.send(ctx, http.MethodGet, "/accounts/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Statement(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.send(ctx, http.MethodGet, "/transactions/statement", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CheckReceiver(ctx context.Context, pixKey string) (*models.Receiver, error) {
	var out models.Receiver
	endpoint := "/transfers/check-receiver/" + url.PathEscape(pixKey)
	if err := c.send(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ExecutePix(ctx context.Context, req models.TransferRequest) (*models.TransferReceipt, error) {
	var out models.TransferReceipt
	if err := c.send(ctx, http.MethodPost, "/transfers/pix", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) PixKeys(ctx context.Context) ([]models.PixKey, error) {
	var out []models.PixKey
	if err := c.send(ctx, http.MethodGet, "/pix-keys", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePixKey(ctx context.Context, req models.PixKeyRequest) (*models.PixKey, error) {
	var out models.PixKey
	if err := c.send(ctx, http.MethodPost, "/pix-keys", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

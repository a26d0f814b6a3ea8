package workflows

import (
	"context"
	"sync"

	"github.com/vitorsaucedo/vbank-cli/internal/client/api"
	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/session"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

// fakeClient records the last request of every operation and returns canned
// responses.
type fakeClient struct {
	registerReq  models.RegistrationRequest
	registerResp *models.RegisterResponse
	registerErr  error

	loginCreds models.Credentials
	loginResp  *models.LoginResponse
	loginErr   error

	dashboardCalls int
	dashboardResp  *models.Dashboard
	dashboardErr   error

	statementResp []models.Transaction
	statementErr  error

	checkedKey   string
	receiverResp *models.Receiver
	receiverErr  error
	// onCheckReceiver runs while the lookup is "in flight", before the
	// response is returned. Used to simulate the user editing the key.
	onCheckReceiver func()

	pixReq  models.TransferRequest
	pixResp *models.TransferReceipt
	pixErr  error

	pixKeysResp []models.PixKey
	pixKeysErr  error

	createKeyReq  models.PixKeyRequest
	createKeyResp *models.PixKey
	createKeyErr  error
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Register(ctx context.Context, req models.RegistrationRequest) (*models.RegisterResponse, error) {
	f.registerReq = req
	return f.registerResp, f.registerErr
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	f.loginCreds = creds
	return f.loginResp, f.loginErr
}

func (f *fakeClient) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	f.dashboardCalls++
	return f.dashboardResp, f.dashboardErr
}

func (f *fakeClient) Statement(ctx context.Context) ([]models.Transaction, error) {
	return f.statementResp, f.statementErr
}

func (f *fakeClient) CheckReceiver(ctx context.Context, pixKey string) (*models.Receiver, error) {
	f.checkedKey = pixKey
	if f.onCheckReceiver != nil {
		f.onCheckReceiver()
	}
	return f.receiverResp, f.receiverErr
}

func (f *fakeClient) ExecutePix(ctx context.Context, req models.TransferRequest) (*models.TransferReceipt, error) {
	f.pixReq = req
	return f.pixResp, f.pixErr
}

func (f *fakeClient) PixKeys(ctx context.Context) ([]models.PixKey, error) {
	return f.pixKeysResp, f.pixKeysErr
}

func (f *fakeClient) CreatePixKey(ctx context.Context, req models.PixKeyRequest) (*models.PixKey, error) {
	f.createKeyReq = req
	return f.createKeyResp, f.createKeyErr
}

// fakeRenderer records the last text and visibility of every field.
type fakeRenderer struct {
	mu      sync.Mutex
	forms   *ui.FormState
	texts   map[ui.Field]string
	visible map[ui.Field]bool
	resets  []ui.Form
}

var _ ui.Renderer = (*fakeRenderer)(nil)

func newFakeRenderer(forms *ui.FormState) *fakeRenderer {
	return &fakeRenderer{
		forms:   forms,
		texts:   make(map[ui.Field]string),
		visible: make(map[ui.Field]bool),
	}
}

func (r *fakeRenderer) SetText(field ui.Field, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts[field] = value
}

func (r *fakeRenderer) SetVisible(field ui.Field, visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible[field] = visible
}

func (r *fakeRenderer) ResetForm(form ui.Form) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets = append(r.resets, form)
	if r.forms != nil {
		r.forms.ClearForm(form)
	}
}

func (r *fakeRenderer) text(field ui.Field) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.texts[field]
}

func (r *fakeRenderer) isVisible(field ui.Field) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible[field]
}

// memRepo is an in-memory localstore.Repository.
type memRepo struct {
	values map[string][]byte
}

func newMemRepo() *memRepo {
	return &memRepo{values: make(map[string][]byte)}
}

func (m *memRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return m.values[key], nil
}

func (m *memRepo) Set(ctx context.Context, key string, value []byte) error {
	m.values[key] = value
	return nil
}

func (m *memRepo) SetAll(ctx context.Context, entries map[string][]byte) error {
	for k, v := range entries {
		m.values[k] = v
	}
	return nil
}

func (m *memRepo) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *memRepo) Clear(ctx context.Context) error {
	m.values = make(map[string][]byte)
	return nil
}

func newTestSession() *session.Store {
	return session.NewStore(newMemRepo(), &logging.NopLogger{})
}

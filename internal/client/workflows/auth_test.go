package workflows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorsaucedo/vbank-cli/internal/client/api"
	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/session"
	"github.com/vitorsaucedo/vbank-cli/internal/client/ui"
	"github.com/vitorsaucedo/vbank-cli/internal/common"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

type authFixture struct {
	client *fakeClient
	forms  *ui.FormState
	r      *fakeRenderer
	nav    *ui.Navigator
	sess   *session.Store
	auth   *Auth
}

func newAuthFixture(client *fakeClient) *authFixture {
	forms := ui.NewFormState()
	r := newFakeRenderer(forms)
	nav := ui.NewNavigator(r)
	sess := newTestSession()
	n := newNotices(r, 0)
	return &authFixture{
		client: client,
		forms:  forms,
		r:      r,
		nav:    nav,
		sess:   sess,
		auth:   NewAuth(client, sess, nav, r, n, &logging.NopLogger{}, 0),
	}
}

func TestAuth_RegisterSuccess(t *testing.T) {
	f := newAuthFixture(&fakeClient{
		registerResp: &models.RegisterResponse{AccountNumber: "12345-6"},
	})
	f.forms.Set(ui.InputRegisterName, "Alice")

	err := f.auth.Register(context.Background(), models.RegistrationRequest{
		FullName:       "Alice",
		Document:       "529.982.247-25",
		Email:          "alice@example.com",
		Password:       "secret",
		TransactionPin: "1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "52998224725", f.client.registerReq.Document)
	assert.Contains(t, f.r.text(ui.FieldRegisterSuccess), "12345-6")
	assert.Contains(t, f.r.resets, ui.FormRegister)
	assert.Equal(t, ui.ScreenLogin, f.nav.Screen())
}

func TestAuth_RegisterRejectsBadDocumentBeforeNetwork(t *testing.T) {
	f := newAuthFixture(&fakeClient{})

	err := f.auth.Register(context.Background(), models.RegistrationRequest{
		Document:       "123",
		TransactionPin: "1234",
	})
	require.ErrorIs(t, err, common.ErrInvalidDocument)

	assert.Empty(t, f.client.registerReq.Document)
	assert.Equal(t, common.ErrInvalidDocument.Error(), f.r.text(ui.FieldRegisterError))
}

func TestAuth_RegisterRejectsBadPin(t *testing.T) {
	f := newAuthFixture(&fakeClient{})

	err := f.auth.Register(context.Background(), models.RegistrationRequest{
		Document:       "52998224725",
		TransactionPin: "12",
	})
	require.ErrorIs(t, err, common.ErrInvalidPin)
}

func TestAuth_RegisterFailureShowsServerMessage(t *testing.T) {
	f := newAuthFixture(&fakeClient{
		registerErr: &api.Error{Kind: api.KindBusiness, Status: 409, Message: "email already registered"},
	})

	err := f.auth.Register(context.Background(), models.RegistrationRequest{
		Document:       "52998224725",
		TransactionPin: "1234",
	})
	require.Error(t, err)

	assert.Equal(t, "email already registered", f.r.text(ui.FieldRegisterError))
	assert.Empty(t, f.r.resets)
}

func TestAuth_LoginInstallsSessionAndNavigates(t *testing.T) {
	f := newAuthFixture(&fakeClient{
		loginResp: &models.LoginResponse{Token: "tok-1"},
	})

	err := f.auth.Login(context.Background(), models.Credentials{
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.True(t, f.sess.IsAuthenticated())
	assert.Equal(t, "tok-1", f.sess.Token())
	require.NotNil(t, f.sess.User())
	assert.Equal(t, "alice@example.com", f.sess.User().Name)
	assert.Equal(t, ui.ScreenDashboard, f.nav.Screen())
	assert.Equal(t, ui.SectionHome, f.nav.Section())
}

func TestAuth_LoginFailureLeavesSessionEmpty(t *testing.T) {
	f := newAuthFixture(&fakeClient{
		loginErr: &api.Error{Kind: api.KindBusiness, Status: 401, Message: "invalid credentials"},
	})

	err := f.auth.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})
	require.Error(t, err)

	assert.False(t, f.sess.IsAuthenticated())
	assert.Nil(t, f.sess.User())
	assert.Equal(t, "invalid credentials", f.r.text(ui.FieldLoginError))
	assert.Equal(t, ui.ScreenLogin, f.nav.Screen())
}

func TestAuth_LogoutIsIdempotent(t *testing.T) {
	f := newAuthFixture(&fakeClient{
		loginResp: &models.LoginResponse{Token: "tok-1"},
	})
	require.NoError(t, f.auth.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"}))

	f.auth.Logout(context.Background())
	assert.False(t, f.sess.IsAuthenticated())
	assert.Nil(t, f.sess.User())
	assert.Equal(t, ui.ScreenLogin, f.nav.Screen())

	f.auth.Logout(context.Background())
	assert.False(t, f.sess.IsAuthenticated())
	assert.Equal(t, ui.ScreenLogin, f.nav.Screen())
}

package client

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/internal/config"
	"github.com/MKhiriev/go-biz-admin/internal/credentials"
	"github.com/MKhiriev/go-biz-admin/internal/fakeapi"
	"github.com/MKhiriev/go-biz-admin/internal/guard"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/notify"
	"github.com/MKhiriev/go-biz-admin/internal/service"
	"github.com/MKhiriev/go-biz-admin/models"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "admin"
)

// ------------ helpers ------------

type fakePrompter struct {
	auth      service.AuthService
	creds     models.Credentials
	confirm   bool
	logins    int
	questions []string
}

func (p *fakePrompter) LoginForm(ctx context.Context, email string) (models.User, error) {
	p.logins++
	return p.auth.Login(ctx, p.creds)
}

func (p *fakePrompter) Confirm(question string) (bool, error) {
	p.questions = append(p.questions, question)
	return p.confirm, nil
}

type testApp struct {
	*App
	out      *bytes.Buffer
	prompter *fakePrompter
	provider credentials.Provider
	notified []string
}

func newTestApp(t *testing.T, interactive bool) *testApp {
	t.Helper()

	store, err := fakeapi.NewStore(testEmail, testPassword)
	require.NoError(t, err)
	server := httptest.NewServer(fakeapi.NewHandler(store, config.FakeAPI{TokenSignKey: "k", TokenDuration: time.Hour}, logger.Nop()).Init())
	t.Cleanup(server.Close)

	ta := &testApp{out: &bytes.Buffer{}, provider: credentials.NewMemoryProvider()}

	api, err := adapter.NewHTTPAccessLayer(config.Adapter{APIURL: server.URL, RequestTimeout: 5 * time.Second}, ta.provider,
		notify.Func(func(_ context.Context, msg string) { ta.notified = append(ta.notified, msg) }), logger.Nop())
	require.NoError(t, err)

	services := service.NewServices(api, ta.provider, logger.Nop())
	ta.prompter = &fakePrompter{auth: services.AuthService, creds: models.Credentials{Email: testEmail, Password: testPassword}}
	ta.App = NewApp(services, ta.provider, ta.prompter, ta.out, interactive, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), logger.Nop())
	return ta
}

func (ta *testApp) run(t *testing.T, args ...string) error {
	t.Helper()
	ta.out.Reset()
	return ta.Run(context.Background(), args)
}

func (ta *testApp) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	require.NoError(t, ta.run(t, args...))
	return ta.out.String()
}

func (ta *testApp) signIn(t *testing.T) {
	t.Helper()
	ta.mustRun(t, "login", "-email", testEmail, "-password", testPassword)
}

// ------------ auth ------------

func TestApp_LoginWithFlags(t *testing.T) {
	ta := newTestApp(t, false)

	out := ta.mustRun(t, "login", "-email", testEmail, "-password", testPassword)

	assert.Contains(t, out, "Signed in as "+testEmail)
	token, err := ta.provider.Get()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Zero(t, ta.prompter.logins)
}

func TestApp_ProtectedWithoutTokenNonInteractive(t *testing.T) {
	ta := newTestApp(t, false)

	err := ta.run(t, "roles", "list")

	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Empty(t, ta.notified)
}

func TestApp_ProtectedRedirectsThroughLoginForm(t *testing.T) {
	ta := newTestApp(t, true)

	out := ta.mustRun(t, "roles", "get", "3")

	assert.Equal(t, 1, ta.prompter.logins)
	assert.Contains(t, out, "Signed in as "+testEmail)
	assert.Contains(t, out, "EDITOR")
}

func TestApp_LoginWhenSignedInShowsAccount(t *testing.T) {
	ta := newTestApp(t, false)
	ta.signIn(t)

	out := ta.mustRun(t, "login")

	assert.Contains(t, out, testEmail)
	assert.Contains(t, out, fakeapi.TokenIssuer)
}

func TestApp_Logout(t *testing.T) {
	ta := newTestApp(t, false)
	ta.signIn(t)

	assert.Contains(t, ta.mustRun(t, "logout"), "Signed out")
	assert.ErrorIs(t, ta.run(t, "whoami"), ErrLoginRequired)
}

func TestApp_TokenCopy(t *testing.T) {
	ta := newTestApp(t, false)
	ta.signIn(t)

	var copied string
	ta.copyToClipboard = func(text string) error {
		copied = text
		return nil
	}

	ta.mustRun(t, "token", "copy")

	token, err := ta.provider.Get()
	require.NoError(t, err)
	assert.Equal(t, token, copied)
}

// ------------ resources ------------

func TestApp_Enums(t *testing.T) {
	ta := newTestApp(t, false)
	ta.signIn(t)

	out := ta.mustRun(t, "enums", "gender")
	assert.Contains(t, out, "Male")
	assert.Contains(t, out, "Female")

	out = ta.mustRun(t, "enums", "-raw", "UNKNOWN_TYPE")
	assert.Contains(t, out, `{"content":null}`)

	assert.ErrorIs(t, ta.run(t, "enums"), ErrUsage)
}

func TestApp_RolesLifecycle(t *testing.T) {
	ta := newTestApp(t, false)
	ta.signIn(t)

	out := ta.mustRun(t, "roles", "create", "-name", "Support", "-permissions", "tickets.read, tickets.write")
	assert.Contains(t, out, "Support")
	assert.Contains(t, out, "tickets.read, tickets.write")

	assert.Contains(t, ta.mustRun(t, "roles", "list"), "Support")

	// seeded rows take ids 1 to 13
	assert.ErrorIs(t, ta.run(t, "roles", "delete", "14"), ErrConfirmationRequired)
	assert.Contains(t, ta.mustRun(t, "roles", "delete", "14", "-yes"), "Role 14 deleted")

	err := ta.run(t, "roles", "get", "14")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, []string{"Resource not found"}, ta.notified)
}

func TestApp_DeleteAsksInteractively(t *testing.T) {
	ta := newTestApp(t, true)
	ta.signIn(t)

	assert.ErrorIs(t, ta.run(t, "roles", "delete", "3"), ErrCancelled)
	require.Len(t, ta.prompter.questions, 1)
	assert.Equal(t, "Delete role 3?", ta.prompter.questions[0])

	ta.prompter.confirm = true
	assert.Contains(t, ta.mustRun(t, "roles", "delete", "3"), "Role 3 deleted")
}

func TestApp_BlogWithCover(t *testing.T) {
	ta := newTestApp(t, false)
	ta.signIn(t)

	dir := t.TempDir()
	cover := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(cover, []byte("PNG"), 0o600))

	out := ta.mustRun(t, "blogs", "create", "-title", "Annual report", "-content", "<p>All <b>good</b></p>", "-cover", cover, "-tags", "finance")
	assert.Contains(t, out, "annual-report")
	assert.Contains(t, out, "/files/")
	assert.Contains(t, out, "All good")

	out = ta.mustRun(t, "blogs", "list", "-status", "draft")
	assert.Contains(t, out, "Annual report")

	assert.Contains(t, ta.mustRun(t, "blogs", "publish", "14"), "PUBLISHED")
	assert.NotContains(t, ta.mustRun(t, "blogs", "list", "-status", "draft"), "Annual report")
}

func TestApp_Bonuses(t *testing.T) {
	ta := newTestApp(t, false)
	ta.signIn(t)

	ta.mustRun(t, "bonuses", "create", "-employee", "7", "-amount", "150", "-currency", "eur")
	ta.mustRun(t, "bonuses", "create", "-employee", "8", "-amount", "90.5", "-currency", "USD")

	out := ta.mustRun(t, "bonuses", "list", "-employee", "7")
	assert.Contains(t, out, "150.00")
	assert.Contains(t, out, "EUR")
	assert.NotContains(t, out, "90.50")

	err := ta.run(t, "bonuses", "create", "-employee", "7", "-amount", "-1", "-currency", "EUR")
	assert.ErrorIs(t, err, service.ErrInvalidBonus)
}

// ------------ misc ------------

func TestApp_UnknownCommandPrintsHelp(t *testing.T) {
	ta := newTestApp(t, false)

	err := ta.run(t, "frobnicate")

	assert.ErrorIs(t, err, guard.ErrRouteNotFound)
	assert.Contains(t, ta.out.String(), "roles list")
}

func TestApp_Version(t *testing.T) {
	ta := newTestApp(t, false)

	out := ta.mustRun(t, "version")

	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestRedactArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"login", "-email", "a@b.c", "-password", "***"},
		redactArgs([]string{"login", "-email", "a@b.c", "-password", "secret"}))
	assert.Equal(t,
		[]string{"login", "--password=***"},
		redactArgs([]string{"login", "--password=secret"}))
}

func TestParseArgs_Interspersed(t *testing.T) {
	fs := newFlagSet("x", &bytes.Buffer{})
	yes := fs.Bool("yes", false, "")

	positional, err := parseArgs(fs, []string{"5", "-yes", "6"})

	require.NoError(t, err)
	assert.True(t, *yes)
	assert.Equal(t, []string{"5", "6"}, positional)
}

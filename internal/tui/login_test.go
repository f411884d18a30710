package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/models"
)

type stubAuth struct {
	creds models.Credentials
	err   error
}

func (s *stubAuth) Login(_ context.Context, creds models.Credentials) (models.User, error) {
	s.creds = creds
	if s.err != nil {
		return models.User{}, s.err
	}
	return models.User{ID: 1, Email: creds.Email}, nil
}

func (s *stubAuth) Logout() error { return nil }
func (s *stubAuth) IsAuthenticated() bool { return false }
func (s *stubAuth) Me(context.Context) (models.User, error) { return models.User{}, nil }
func (s *stubAuth) Claims() (models.Claims, error) { return models.Claims{}, nil }

func typeText(m *LoginModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoginModel_PrefilledEmailFocusesPassword(t *testing.T) {
	m := NewLoginModel(context.Background(), &stubAuth{}, "admin@example.com")

	assert.Equal(t, 1, m.focus)
	assert.Equal(t, "admin@example.com", m.inputs[0].Value())
}

func TestLoginModel_RequiresBothFields(t *testing.T) {
	m := NewLoginModel(context.Background(), &stubAuth{}, "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Email and password are required", m.errMsg)
}

func TestLoginModel_SubmitAndSucceed(t *testing.T) {
	auth := &stubAuth{}
	m := NewLoginModel(context.Background(), auth, "")

	typeText(m, " admin@example.com ")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "secret")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Contains(t, m.View(), "Signing in")

	msg := cmd()
	assert.Equal(t, models.Credentials{Email: "admin@example.com", Password: "secret"}, auth.creds)

	_, cmd = m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "admin@example.com", m.user.Email)
	assert.False(t, m.quitByUser)
}

func TestLoginModel_ShowsLoginError(t *testing.T) {
	m := NewLoginModel(context.Background(), &stubAuth{}, "")
	m.submitting = true

	refused := &adapter.APIError{
		Message: "connection refused",
		Err:     &url.Error{Op: "Post", URL: "http://127.0.0.1:1/api/auth/login", Err: errors.New("connection refused")},
	}
	_, cmd := m.Update(LoginResult{Err: fmt.Errorf("login: %w", refused)})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Network is down or the API is unreachable", m.errMsg)
}

func TestLoginErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", want: ""},
		{
			name: "server message",
			err:  &adapter.APIError{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized, Err: &adapter.StatusError{StatusCode: http.StatusUnauthorized}},
			want: "Invalid email or password",
		},
		{
			name: "no response",
			err:  &adapter.APIError{Message: "EOF", Err: errors.New("EOF")},
			want: "Network is down or the API is unreachable",
		},
		{
			name: "timeout",
			err:  &adapter.APIError{Message: "context deadline exceeded", Err: &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded}},
			want: "The API did not answer in time",
		},
		// a transport-looking text outside an APIError is shown as is
		{name: "plain error", err: errors.New("dial tcp: connection refused"), want: "dial tcp: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, loginErrorMessage(tt.err))
		})
	}
}

func TestLoginModel_EscQuits(t *testing.T) {
	m := NewLoginModel(context.Background(), &stubAuth{}, "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.True(t, m.quitByUser)
}

func TestLoginModel_PasswordIsMasked(t *testing.T) {
	m := NewLoginModel(context.Background(), &stubAuth{}, "admin@example.com")
	typeText(m, "hunter2")

	assert.NotContains(t, m.View(), "hunter2")
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want bool
	}{
		{name: "yes", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, want: true},
		{name: "no", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}},
		{name: "esc", key: tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, cmd := newConfirmModel("Delete role 3?").Update(tt.key)

			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, model.(confirmModel).confirmed)
		})
	}
}

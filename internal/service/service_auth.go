package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/internal/credentials"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
	"github.com/MKhiriev/go-biz-admin/models"
)

const (
	pathLogin = "/api/auth/login"
	pathMe    = "/api/auth/me"
)

type authService struct {
	api      adapter.APIClient
	provider credentials.Provider

	logger *logger.Logger
}

func NewAuthService(api adapter.APIClient, provider credentials.Provider, logger *logger.Logger) AuthService {
	return &authService{
		api:      api,
		provider: provider,
		logger:   logger,
	}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrEmptyCredentials
	}

	resp, err := a.api.Post(ctx, pathLogin, creds)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	session, err := decodeContent[models.Session](resp)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	token := session.Token
	if token == "" {
		// some deployments return the token only in the response header
		token, err = utils.ParseBearerToken(resp.Header.Get(adapter.HeaderAuthorization))
		if err != nil {
			return models.User{}, fmt.Errorf("login: %w", ErrNoToken)
		}
	}

	if err = a.provider.Set(token); err != nil {
		return models.User{}, fmt.Errorf("error saving token: %w", err)
	}

	a.logger.Debug().Str("func", "*authService.Login").Int64("user_id", session.User.ID).Msg("logged in")
	return session.User, nil
}

func (a *authService) Logout() error {
	if err := a.provider.Clear(); err != nil {
		return fmt.Errorf("error removing token: %w", err)
	}
	return nil
}

func (a *authService) IsAuthenticated() bool {
	token, err := a.provider.Get()
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.IsAuthenticated").Msg("error reading token")
		return false
	}
	return token != ""
}

func (a *authService) Me(ctx context.Context) (models.User, error) {
	resp, err := a.api.Get(ctx, pathMe)
	if err != nil {
		return models.User{}, fmt.Errorf("get current user: %w", err)
	}
	return decodeContent[models.User](resp)
}

func (a *authService) Claims() (models.Claims, error) {
	token, err := a.provider.Get()
	if err != nil {
		return models.Claims{}, fmt.Errorf("error reading token: %w", err)
	}
	if token == "" {
		return models.Claims{}, ErrNoToken
	}

	claims, err := utils.ParseUnverifiedClaims(token)
	if err != nil {
		return models.Claims{}, err
	}
	return claims, nil
}

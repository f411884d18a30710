package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-biz-admin/internal/guard"
	"github.com/MKhiriev/go-biz-admin/internal/tui"
	"github.com/MKhiriev/go-biz-admin/models"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet(guard.LoginPath, a.out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	var (
		user models.User
		err  error
	)
	switch {
	case *email != "" && *password != "":
		user, err = a.services.AuthService.Login(ctx, models.Credentials{Email: *email, Password: *password})
	case a.interactive:
		user, err = a.ui.LoginForm(ctx, *email)
	default:
		return ErrLoginRequired
	}
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", user.Email)

	// continue with the command that asked for the login
	if from := guard.RedirectedFrom(ctx); from != "" {
		return &guard.RedirectError{From: guard.LoginPath, To: from}
	}
	return nil
}

func (a *App) logout(_ context.Context, _ []string) error {
	if err := a.services.AuthService.Logout(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	user, err := a.services.AuthService.Me(ctx)
	if err != nil {
		return err
	}

	fields := [][2]string{
		{"ID", fmt.Sprint(user.ID)},
		{"Email", user.Email},
		{"Name", user.Name},
		{"Roles", strings.Join(user.Roles, ", ")},
	}

	claims, err := a.services.AuthService.Claims()
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.whoami").Msg("token claims unavailable")
	} else {
		fields = append(fields, [2]string{"Issuer", claims.Issuer})
		if exp := claims.ExpiresAtTime(); !exp.IsZero() {
			fields = append(fields, [2]string{"Expires", exp.Local().Format(time.RFC3339)})
		}
	}

	fmt.Fprintln(a.out, tui.RenderRecord(fields))
	return nil
}

func (a *App) copyToken(_ context.Context, _ []string) error {
	token, err := a.provider.Get()
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if err = a.copyToClipboard(token); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintln(a.out, "Token copied to clipboard")
	return nil
}

func (a *App) version(_ context.Context, _ []string) error {
	fmt.Fprintln(a.out, tui.RenderBuildInfo(a.buildInfo))
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the interactive pieces of the admin CLI: the login
// form, the delete confirmation and the table renderer used for command
// output.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/service"
	"github.com/MKhiriev/go-biz-admin/models"
)

// ErrUserQuit is returned when the user leaves a form without submitting.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	auth service.AuthService
	in   io.Reader
	out  io.Writer

	logger *logger.Logger
}

// New creates a TUI bound to the terminal streams in and out.
func New(auth service.AuthService, in io.Reader, out io.Writer, log *logger.Logger) *TUI {
	return &TUI{auth: auth, in: in, out: out, logger: log}
}

// LoginForm runs the login form until the user signs in or quits.
func (t *TUI) LoginForm(ctx context.Context, email string) (models.User, error) {
	finalModel, err := t.run(NewLoginModel(ctx, t.auth, email))
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	t.logger.Debug().Str("func", "*TUI.LoginForm").Int64("user_id", result.user.ID).Msg("logged in via form")
	return result.user, nil
}

// Confirm asks a yes/no question. Anything but an explicit "y" is a no.
func (t *TUI) Confirm(question string) (bool, error) {
	finalModel, err := t.run(newConfirmModel(question))
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.confirmed, nil
}

func (t *TUI) run(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-biz-admin/internal/credentials"
	"github.com/MKhiriev/go-biz-admin/internal/guard"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/service"
	"github.com/MKhiriev/go-biz-admin/models"
)

type App struct {
	services    *service.Services
	provider    credentials.Provider
	ui          Prompter
	router      *guard.Router
	out         io.Writer
	interactive bool
	buildInfo   models.AppBuildInfo

	copyToClipboard func(text string) error

	logger *logger.Logger
}

// NewApp wires the command routes. interactive enables the login form and
// delete confirmations of ui; without it those commands need flags.
func NewApp(services *service.Services, provider credentials.Provider, ui Prompter, out io.Writer, interactive bool,
	buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	a := &App{
		services:        services,
		provider:        provider,
		ui:              ui,
		router:          guard.NewRouter(log),
		out:             out,
		interactive:     interactive,
		buildInfo:       buildInfo,
		copyToClipboard: clipboard.WriteAll,
		logger:          log,
	}
	a.routes()
	return a
}

func (a *App) routes() {
	auth := a.services.AuthService
	r := a.router

	r.Handle("help", a.help)
	r.Handle("version", a.version)

	r.Handle(guard.LoginPath, guard.GuestOnly(auth, a.login))
	r.Handle("logout", a.logout)
	r.Handle(guard.HomePath, guard.Protected(auth, a.whoami))
	r.Handle("token copy", guard.Protected(auth, a.copyToken))

	r.Handle("enums", guard.Protected(auth, a.listEnums))

	r.Handle("roles list", guard.Protected(auth, a.listRoles))
	r.Handle("roles get", guard.Protected(auth, a.getRole))
	r.Handle("roles create", guard.Protected(auth, a.createRole))
	r.Handle("roles delete", guard.Protected(auth, a.deleteRole))

	r.Handle("blogs list", guard.Protected(auth, a.listBlogs))
	r.Handle("blogs get", guard.Protected(auth, a.getBlog))
	r.Handle("blogs create", guard.Protected(auth, a.createBlog))
	r.Handle("blogs delete", guard.Protected(auth, a.deleteBlog))
	r.Handle("blogs publish", guard.Protected(auth, a.publishBlog))

	r.Handle("bonuses list", guard.Protected(auth, a.listBonuses))
	r.Handle("bonuses create", guard.Protected(auth, a.createBonus))
	r.Handle("bonuses delete", guard.Protected(auth, a.deleteBonus))
}

// Run dispatches args to the matching command. No args prints the help.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.help(ctx, nil)
	}

	a.logger.Debug().Str("func", "*App.Run").Strs("args", redactArgs(args)).Msg("running command")

	err := a.router.Dispatch(ctx, args)
	if errors.Is(err, guard.ErrRouteNotFound) {
		_ = a.help(ctx, nil)
	}
	return err
}

func (a *App) help(_ context.Context, _ []string) error {
	fmt.Fprintln(a.out, "Usage: admin [flags] <command> [args]")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Commands:")
	for _, route := range a.router.Routes() {
		fmt.Fprintf(a.out, "  %s\n", route)
	}
	return nil
}

// confirmDelete asks before deleting what. -yes skips the question; without
// a terminal it is required.
func (a *App) confirmDelete(what string, yes bool) error {
	if yes {
		return nil
	}
	if !a.interactive {
		return ErrConfirmationRequired
	}

	ok, err := a.ui.Confirm(fmt.Sprintf("Delete %s?", what))
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}

// redactArgs hides the value following a -password flag.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, arg := range out {
		name := strings.TrimLeft(arg, "-")
		switch {
		case strings.HasPrefix(name, "password="):
			out[i] = arg[:strings.Index(arg, "=")+1] + "***"
		case name == "password" && arg != name && i+1 < len(out):
			out[i+1] = "***"
		}
	}
	return out
}

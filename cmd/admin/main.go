package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/internal/client"
	"github.com/MKhiriev/go-biz-admin/internal/config"
	"github.com/MKhiriev/go-biz-admin/internal/credentials"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/notify"
	"github.com/MKhiriev/go-biz-admin/internal/service"
	"github.com/MKhiriev/go-biz-admin/internal/tui"
	"github.com/MKhiriev/go-biz-admin/internal/workers"
	"github.com/MKhiriev/go-biz-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-biz-admin").Error().Err(err).Msg("error getting configs")
		return 2
	}

	log := logger.NewClientLogger("go-biz-admin", cfg.App.LogFile, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := credentials.New(ctx, cfg.Credentials, log)
	if err != nil {
		log.Error().Err(err).Msg("error opening credentials storage")
		return 1
	}
	defer provider.Close()

	dispatcher := notify.NewDispatcher(notify.FromConfig(cfg.Notifier, os.Stderr, log), cfg.Notifier.QueueSize, log)
	background := workers.NewWorkers(dispatcher)
	background.Run()
	defer background.Stop()

	api, err := adapter.NewHTTPAccessLayer(cfg.Adapter, provider, dispatcher, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating api access layer")
		return 1
	}

	services := service.NewServices(api, provider, log)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	ui := tui.New(services.AuthService, os.Stdin, os.Stdout, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := client.NewApp(services, provider, ui, os.Stdout, interactive, buildInfo, log)
	if err = app.Run(ctx, args); err != nil {
		log.Error().Err(err).Strs("args", args[:min(len(args), 2)]).Msg("command failed")
		var apiErr *adapter.APIError
		if !errors.As(err, &apiErr) {
			// API failures were already shown by the notifier
			os.Stderr.WriteString(err.Error() + "\n")
		}
		return 1
	}
	return 0
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-biz-admin/internal/config"
	"github.com/MKhiriev/go-biz-admin/internal/fakeapi"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/workers"
	"github.com/MKhiriev/go-biz-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-biz-admin-fakeapi")
	cfg, err := config.GetFakeAPIConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	server, err := fakeapi.NewServer(cfg.FakeAPI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating fake api server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	background := workers.NewWorkers(server)
	background.Run()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	background.Stop()
}

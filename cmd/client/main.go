package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/doc-query/internal/adapter"
	"github.com/MKhiriev/doc-query/internal/client"
	"github.com/MKhiriev/doc-query/internal/config"
	handler "github.com/MKhiriev/doc-query/internal/handler/http"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/server"
	"github.com/MKhiriev/doc-query/internal/service"
	"github.com/MKhiriev/doc-query/internal/session"
	"github.com/MKhiriev/doc-query/internal/store"
	"github.com/MKhiriev/doc-query/internal/tui"
	"github.com/MKhiriev/doc-query/internal/workers"
	"github.com/MKhiriev/doc-query/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("doc-query-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sess := session.NewSession(localStorage.SessionRepository, log)
	bootstrapper := session.NewBootstrapper(sess, cfg.Session, log)

	w := workers.NewWorkers(log)
	defer w.Shutdown()

	bridge := tui.NewBridge()
	services := service.NewClientServices(cfg, sess, serverAdapter, w.Scheduler, bridge, log)

	ui, err := tui.New(services, bridge, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	handoff := handler.NewHandler(bootstrapper, cfg, buildInfo, log)
	srv := server.NewServer(handoff, cfg.Session, log)

	app := client.NewApp(bootstrapper, handoff, srv, ui, cfg.Session, os.Stdout, log)
	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"leakwatch/internal/api"
	"leakwatch/internal/api/handler/v1handler"
	"leakwatch/internal/breach"
	"leakwatch/internal/config"
	"leakwatch/internal/darkweb"
	"leakwatch/internal/monitor"
	"leakwatch/internal/password"
	"leakwatch/internal/worker"
	"leakwatch/pkg/breachsource/hibp"
	"leakwatch/pkg/hashrange/pwnedpasswords"
	"leakwatch/pkg/logger"
	"leakwatch/pkg/notify"
	"leakwatch/pkg/notify/telegram"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newChecker builds the breach aggregator over the remote index and the
// local catalog.
func newChecker(cfg *config.Config) *breach.Aggregator {
	source := hibp.New(&http.Client{Timeout: cfg.HIBP.Timeout}, cfg.HIBP.APIKey, cfg.HIBP.BaseURL)

	return breach.New(source, breach.DefaultCatalog(), breach.NewThresholds(cfg))
}

// newAssessor builds the password strength engine over the k-anonymity
// range source.
func newAssessor(cfg *config.Config) *password.Engine {
	ranges := pwnedpasswords.New(&http.Client{Timeout: cfg.PwnedPasswords.Timeout}, cfg.PwnedPasswords.BaseURL)

	return password.NewEngine(ranges)
}

func newNotifier(ctx context.Context, cfg *config.Config) notify.Notifier {
	if cfg.Telegram.Token == "" {
		logger.Warn(ctx, "telegram token not configured, alert delivery disabled")

		return notify.Discard{}
	}

	return telegram.New(&http.Client{Timeout: cfg.Telegram.Timeout}, cfg.Telegram.Token, cfg.Telegram.BaseURL)
}

func setupServer(ctx context.Context, deps api.Deps, cfg *config.Config) func(ctx context.Context) {
	server := api.NewServer(deps, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and the monitoring scheduler",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			checker := newChecker(cfg)
			assessor := newAssessor(cfg)
			scanner := darkweb.NewService(hibp.New(
				&http.Client{Timeout: cfg.HIBP.Timeout}, cfg.HIBP.APIKey, cfg.HIBP.BaseURL))

			monitorService := monitor.New(strg, checker, scanner, newNotifier(ctx, cfg), monitor.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, monitorService, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, api.Deps{Deps: v1handler.Deps{
				Checker:  checker,
				Assessor: assessor,
				Monitor:  monitorService,
				Storage:  strg,
			}}, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}

package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "github.com/RisingZenByte/tianji-api/internal/adapters/http"
	"github.com/RisingZenByte/tianji-api/internal/app"
	"github.com/RisingZenByte/tianji-api/internal/config"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := installLogger(os.Stdout, cfg.LogLevel)
	mingli := app.NewMingliService(newCompleter(cfg, logger), logger)
	logger.Info("config loaded", "addr", cfg.HTTPAddr, "model", cfg.LLMModel, "ai_enabled", mingli.Configured())

	handler := httpadapter.NewHandler(mingli, newAlmanacService())
	e := httpadapter.NewServer(handler, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

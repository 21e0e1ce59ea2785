package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpLayer "rate-normalizer/http"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: "Start the HTTP API used by the ingestion pipeline.\n\n" +
			"Endpoints:\n" +
			"  POST /rates/normalize          normalize one rate record\n" +
			"  POST /rates/normalize-batch    normalize an array of records\n" +
			"  GET  /rates/quarantine         records rejected so far\n" +
			"  GET  /terms/normalize?term=66  normalization info for a term\n" +
			"  GET  /terms/range?min=37&max=60\n" +
			"  GET  /terms/standard",
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	rateHandler := httpLayer.NewRateHandler(a.service, a.log)
	termHandler := httpLayer.NewTermHandler(a.service, a.log)

	rateLimiter := httpLayer.NewRateLimiter(a.cfg.Limiter.Capacity, a.cfg.Limiter.Window)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(rateHandler, termHandler, rateLimiter, a.log),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info("🚀 API corriendo", "addr", a.cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		a.log.Error("error starting server", "error", err)
		return err
	case <-quit:
		a.log.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		a.log.Error("error during server shutdown", "error", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}

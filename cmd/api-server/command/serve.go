package command

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"newshub/database"
	httpapi "newshub/internal/microservices/http-api"
)

var ensureSchema bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if ensureSchema {
			if err := database.EnsureSchema(ctx, db.Pool); err != nil {
				return err
			}
			log.Info().Msg("schema ensured")
		}

		router := httpapi.NewRouter(cfg, httpapi.NewServices(db, cfg), log)
		srv := &http.Server{
			Addr:              cfg.HTTPAddr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		errChan := make(chan error, 1)
		go func() {
			log.Info().Str("addr", srv.Addr).Str("env", cfg.GoEnv).Msg("http server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()

		select {
		case sig := <-sigChan:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
		case err := <-errChan:
			return err
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info().Msg("server stopped gracefully")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&ensureSchema, "ensure-schema", false, "create missing tables before serving")
	rootCmd.AddCommand(serveCmd)
}

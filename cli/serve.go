package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"newsdesk-api/api"
	"newsdesk-api/api/handlers"
)

var templateGlob string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		return runServer(app)
	},
}

func init() {
	serveCmd.Flags().StringVar(&templateGlob, "templates", "web/templates/*", "Glob for HTML templates")
}

func runServer(app *app) error {
	ctx := context.Background()

	// The transient store only reflects the latest refresh cycle; start
	// each process with it empty.
	if err := app.recentStore.Save(ctx, nil); err != nil {
		return err
	}
	app.logger.Info("Transient store cleared on startup", nil)

	handler := handlers.NewHandler(app.cfg.Categories, app.ingest, app.saved,
		app.savedStore, app.recentStore, app.logger)

	router := api.NewRouter(api.Config{
		Logger:       app.logger,
		TemplateGlob: templateGlob,
		RatePerSec:   5,
		RateBurst:    10,
	}, handler)

	srv := &http.Server{
		Addr:         ":" + app.cfg.Server.Port,
		Handler:      api.WrapCORS(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stopTicker := startRefreshTicker(app)
	defer stopTicker()

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("HTTP server starting", map[string]interface{}{
			"address":       srv.Addr,
			"refresh_timer": app.cfg.Server.RefreshTimer,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	app.logger.Info("Shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	app.logger.Info("Server stopped", nil)
	return nil
}

// startRefreshTicker runs background refresh cycles when REFRESH_TIMER is
// set. Returns a stop function; a no-op when the ticker is disabled.
func startRefreshTicker(app *app) func() {
	minutes := app.cfg.Server.RefreshTimer
	if minutes <= 0 {
		return func() {}
	}

	ticker := time.NewTicker(time.Duration(minutes) * time.Minute)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				count, err := app.ingest.Refresh(context.Background())
				if err != nil {
					app.logger.Error("Background refresh failed", map[string]interface{}{"error": err.Error()})
					continue
				}
				app.logger.Info("Background refresh completed", map[string]interface{}{"collected": count})
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}

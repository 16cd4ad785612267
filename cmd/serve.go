package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kowalski-site/kowalski/internal/router"
	"github.com/kowalski-site/kowalski/internal/server"
	"github.com/kowalski-site/kowalski/internal/web"
)

const (
	sessionSweepInterval = time.Minute
	sessionIdleTTL       = 30 * time.Minute
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long:  `Starts the web server. Pages render on the server; a websocket keeps the menu live in the browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		reg, catalog, err := buildRegistry(cfg)
		if err != nil {
			return err
		}
		mode, err := router.ParseMode(cfg.Router.Mode)
		if err != nil {
			return err
		}

		site := web.NewFromCatalog(web.Config{
			Title:        cfg.Site.Title,
			HeaderHeight: cfg.Site.HeaderHeight,
			Mode:         mode,
			PressDelay:   cfg.PressDelay(),
			Transition:   cfg.Transition(),
			Verbose:      verbose,
		}, reg, catalog)

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		})
		site.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go site.Sessions().Run(ctx, sessionSweepInterval, sessionIdleTTL)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "kowalski %s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Router: %s\n", mode)
		fmt.Fprintf(os.Stderr, "  Pages: %v\n", reg.IDs())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

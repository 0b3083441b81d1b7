package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/admin"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/visitors"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		site := siteFS(cfg)
		pipeline, err := newPipeline(cfg, site, logger)
		if err != nil {
			return err
		}

		deps := server.Deps{
			Site:     site,
			Pipeline: pipeline,
			Mailer:   contact.NewMailer(cfg.SMTP, nil, logger),
		}

		if cfg.Visitors.Enabled {
			store, err := visitors.Open(cfg.Visitors.DBPath)
			if err != nil {
				return fmt.Errorf("opening visitor store: %w", err)
			}
			defer store.Close()
			visitors.StartCleanup(ctx, store, cfg.Visitors.Retention, logger)
			logger.Info("visitor tracking enabled with hashed IP addresses")

			adm, err := admin.New(cfg.Admin, store, cfg.Visitors.Retention, cfg.Server.SecureCookie, logger)
			if err != nil {
				return err
			}
			deps.Visitors = store
			deps.Admin = adm
		}

		srv, err := server.New(cfg, deps, logger)
		if err != nil {
			return fmt.Errorf("building server: %w", err)
		}
		logger.Info("starting portfolio", zap.String("addr", cfg.Addr()), zap.Bool("remote_content", cfg.Content.BaseURL != ""))
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

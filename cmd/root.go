package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/app"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/web"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Server-rendered personal portfolio",
	Long: `Portfolio serves a personal portfolio site. Each page request loads the
content and project documents, renders them into the page skeleton and
stamps in the hooks the client-side animations use.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
}

// loadConfig reads and validates the configuration and builds the logger.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// siteFS is the embedded site unless site.dir points somewhere on disk.
func siteFS(cfg *config.Config) fs.FS {
	if cfg.Site.Dir != "" {
		return os.DirFS(cfg.Site.Dir)
	}
	return web.FS
}

func newPipeline(cfg *config.Config, site fs.FS, logger *zap.Logger) (*app.Pipeline, error) {
	var src content.Source
	if cfg.Content.BaseURL != "" {
		src = content.NewHTTPSource(cfg.Content.BaseURL, nil)
	} else {
		data, err := fs.Sub(site, "data")
		if err != nil {
			return nil, fmt.Errorf("opening site data: %w", err)
		}
		src = content.FSSource{FS: data}
	}

	loader := content.NewLoader(src)
	loader.DataFile = cfg.Content.DataFile
	loader.ProjectsFile = cfg.Content.ProjectsFile

	var fx app.Decorator
	if cfg.Effects.Enabled {
		runner := effects.NewRunner(logger)
		runner.Delay = cfg.Effects.Delay
		fx = runner
	}

	return app.NewPipeline(loader, render.NewRenderer(render.Options{Markdown: cfg.Content.Markdown}), fx, logger), nil
}

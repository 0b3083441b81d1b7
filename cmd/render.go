package cmd

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/theme"
)

var (
	renderPage  string
	renderTheme string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one page to stdout",
	Long:  `Runs the same load, render and decorate pass the server runs for a request and prints the resulting HTML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		skeleton, ok := server.Pages[renderPage]
		if !ok {
			return fmt.Errorf("unknown page %q", renderPage)
		}
		t, ok := theme.Parse(renderTheme)
		if !ok {
			return fmt.Errorf("unknown theme %q", renderTheme)
		}

		site := siteFS(cfg)
		pipeline, err := newPipeline(cfg, site, logger)
		if err != nil {
			return err
		}

		raw, err := fs.ReadFile(site, skeleton)
		if err != nil {
			return fmt.Errorf("reading %s: %w", skeleton, err)
		}
		p, err := render.ParsePageBytes(raw)
		if err != nil {
			return err
		}
		theme.Apply(p, t)
		if err := pipeline.Run(cmd.Context(), p, effects.Env{Light: t.IsLight()}); err != nil {
			return err
		}

		out, err := p.HTML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderPage, "page", "/", "page route to render")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "dark", "theme to render with (light or dark)")
	rootCmd.AddCommand(renderCmd)
}

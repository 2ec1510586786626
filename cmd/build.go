package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fusionprintdesign/fusionsite/internal/assets"
	"github.com/fusionprintdesign/fusionsite/internal/export"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long: `Render every page, copy the static assets and write a sitemap into an
output directory that any static file host can serve.

The contact form needs the running server to process submissions.

Examples:
  fusionsite build
  fusionsite build --out public --base-url https://fusionprint.example
  fusionsite build -f json`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var (
	buildOutDir  string
	buildBaseURL string
	buildFormat  string
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "dist", "Output directory")
	buildCmd.Flags().StringVar(&buildBaseURL, "base-url", "", "Absolute site URL used for canonical links and the sitemap (default site.base_url)")
	addFormatFlag(buildCmd, &buildFormat, formatText, formatText, formatJSON, formatYAML)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if err := validatePathArgument(buildOutDir); err != nil {
		return fmt.Errorf("invalid output directory: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	baseURL := cfg.Site.BaseURL
	if buildBaseURL != "" {
		baseURL = buildBaseURL
	}

	start := time.Now()
	exporter := export.New(export.Options{
		OutDir:    buildOutDir,
		BaseURL:   baseURL,
		Preloader: cfg.Site.Preloader,
		Assets:    assets.FS(cfg.Site.StaticDir),
	}, newLogger(cfg))

	manifest, err := exporter.Export(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if buildFormat != formatText {
		return writeStructured(out, buildFormat, manifest)
	}

	fmt.Fprintf(out, "Exported %d pages, %d assets and %d sitemap to %s (%d bytes) in %v\n",
		manifest.Count(export.KindPage),
		manifest.Count(export.KindAsset),
		manifest.Count(export.KindSitemap),
		manifest.OutDir,
		manifest.TotalBytes(),
		time.Since(start).Round(time.Millisecond))

	return nil
}

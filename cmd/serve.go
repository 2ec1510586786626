package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fusionprintdesign/fusionsite/internal/config"
	"github.com/fusionprintdesign/fusionsite/internal/server"
	"github.com/fusionprintdesign/fusionsite/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site",
	Long: `Serve the site over HTTP until interrupted.

--dev switches to the development environment, which turns on live reload
for the watched asset directories.

Examples:
  fusionsite serve
  fusionsite serve --port 3000
  fusionsite serve --dev --host 0.0.0.0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveDev bool

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "localhost", "Host to bind to")
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "Run in development mode with live reload")

	AddFlagValidation(serveCmd, "port", ValidatePort)

	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveDev {
		viper.Set("server.environment", config.EnvDevelopment)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger, server.Options{})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info(ctx, "starting server",
		"addr", cfg.Addr(),
		"environment", cfg.Server.Environment,
		"version", version.GetShortVersion(),
		"live_reload", cfg.Development.LiveReload)
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s\n", cfg.Site.Name, cfg.Addr())

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info(ctx, "server stopped")

	return nil
}

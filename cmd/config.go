package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fusionprintdesign/fusionsite/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Long: `Show or validate the effective configuration, after defaults, the
config file and FUSIONSITE_* environment variables are merged.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Validate the configuration and report errors and warnings.

Examples:
  fusionsite config validate
  fusionsite config validate --file production.yml --strict`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

var (
	configShowFormat     string
	configValidateFile   string
	configValidateStrict bool
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configValidateCmd)

	addFormatFlag(configShowCmd, &configShowFormat, formatYAML, formatYAML, formatJSON)

	configValidateCmd.Flags().StringVar(&configValidateFile, "file", "", "Validate this file instead of the active configuration")
	configValidateCmd.Flags().BoolVar(&configValidateStrict, "strict", false, "Treat warnings as errors")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if configShowFormat == formatJSON {
		return writeStructured(out, formatJSON, cfg)
	}

	data, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(data)

	return err
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()
	if configValidateFile != "" {
		if err := validatePathArgument(configValidateFile); err != nil {
			return fmt.Errorf("invalid config file path: %w", err)
		}

		v = viper.New()
		v.SetConfigFile(configValidateFile)
		config.BindEnv(v)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read %s: %w", configValidateFile, err)
		}
	}

	out := cmd.OutOrStdout()

	cfg, err := config.LoadFrom(v)
	if err != nil {
		fmt.Fprintln(out, "✗ Configuration is invalid")
		return err
	}

	result := config.ValidateConfigWithDetails(cfg)
	fmt.Fprint(out, result.String())

	if result.HasErrors() {
		return fmt.Errorf("configuration has %d error(s)", len(result.Errors))
	}
	if configValidateStrict && result.HasWarnings() {
		return fmt.Errorf("configuration has %d warning(s)", len(result.Warnings))
	}

	fmt.Fprintln(out, "✓ Configuration is valid")

	return nil
}

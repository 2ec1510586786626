//go:build property

package config

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/viper"
)

func TestConfigurationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("ports inside range always load", prop.ForAll(
		func(port int) bool {
			v := viper.New()
			v.Set("server.port", port)
			cfg, err := LoadFrom(v)

			return err == nil && cfg.Server.Port == port
		},
		gen.IntRange(0, 65535),
	))

	properties.Property("ports outside range never load", prop.ForAll(
		func(port int) bool {
			v := viper.New()
			v.Set("server.port", port)
			_, err := LoadFrom(v)

			return err != nil
		},
		gen.OneGenOf(gen.IntRange(-100000, -1), gen.IntRange(65536, 1000000)),
	))

	properties.Property("paths with traversal are rejected", prop.ForAll(
		func(name string) bool {
			return validatePath("../"+name) != nil
		},
		gen.AlphaString(),
	))

	properties.Property("detailed validation agrees with Load", prop.ForAll(
		func(sink string) bool {
			v := viper.New()
			v.Set("quotes.sink", sink)
			_, err := LoadFrom(v)

			cfg, _ := LoadFrom(viper.New())
			cfg.Quotes.Sink = sink
			result := ValidateConfigWithDetails(cfg)

			return (err == nil) == result.Valid
		},
		gen.OneConstOf(SinkLog, SinkSQLite, SinkBoth, "", "kafka"),
	))

	properties.TestingRun(t)
}

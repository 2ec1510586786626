package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionprintdesign/fusionsite/internal/accessibility"
	"github.com/fusionprintdesign/fusionsite/internal/config"
	"github.com/fusionprintdesign/fusionsite/internal/pages"
	"github.com/fusionprintdesign/fusionsite/internal/quote"
	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

// resetViper gives each test a clean configuration with quiet logging.
func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	viper.Set("log.level", "error")
	t.Cleanup(viper.Reset)
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())

	return cmd, &buf
}

func TestRoutesCommand(t *testing.T) {
	cmd, out := testCommand()

	routesFormat = formatTable
	require.NoError(t, runRoutes(cmd, nil))

	table := out.String()
	assert.Contains(t, table, "PATH")
	for _, r := range pages.Routes() {
		assert.Contains(t, table, r.Path)
	}
}

func TestRoutesCommandJSON(t *testing.T) {
	cmd, out := testCommand()

	routesFormat = formatJSON
	t.Cleanup(func() { routesFormat = formatTable })
	require.NoError(t, runRoutes(cmd, nil))

	var routes []pages.Route
	require.NoError(t, json.Unmarshal(out.Bytes(), &routes))
	require.Len(t, routes, 6)
	assert.Equal(t, "/", routes[0].Path)
	assert.Equal(t, "contact", routes[5].Name)
}

func TestVersionCommand(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		cmd, out := testCommand()
		versionShort = true
		t.Cleanup(func() { versionShort = false })

		require.NoError(t, runVersion(cmd, nil))
		assert.NotEmpty(t, strings.TrimSpace(out.String()))
		assert.Equal(t, 1, strings.Count(out.String(), "\n"))
	})

	t.Run("json", func(t *testing.T) {
		cmd, out := testCommand()
		versionFormat = formatJSON
		t.Cleanup(func() { versionFormat = formatText })

		require.NoError(t, runVersion(cmd, nil))

		var info map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &info))
		assert.Contains(t, info, "version")
		assert.Contains(t, info, "go_version")
	})

	t.Run("text", func(t *testing.T) {
		cmd, out := testCommand()
		versionFormat = formatText

		require.NoError(t, runVersion(cmd, nil))
		assert.Contains(t, out.String(), "fusionsite ")
		assert.Contains(t, out.String(), "Go version:")
	})
}

func TestConfigShow(t *testing.T) {
	resetViper(t)
	viper.Set("server.port", 9090)

	cmd, out := testCommand()
	configShowFormat = formatYAML
	require.NoError(t, runConfigShow(cmd, nil))

	assert.Contains(t, out.String(), "port: 9090")
	assert.Contains(t, out.String(), "cookie_name: fpd_session")
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		yaml    string
		strict  bool
		wantErr bool
		output  string
	}{
		{
			name:   "valid",
			yaml:   "server:\n  port: 8080\n",
			output: "Configuration is valid",
		},
		{
			name:    "unknown sink",
			yaml:    "quotes:\n  sink: email\n",
			wantErr: true,
			output:  "Configuration is invalid",
		},
		{
			name:   "warning passes",
			yaml:   "contact:\n  requests_per_minute: 0\n",
			output: "contact form posts are not rate limited",
		},
		{
			name:    "warning fails strict",
			yaml:    "contact:\n  requests_per_minute: 0\n",
			strict:  true,
			wantErr: true,
			output:  "Validation warnings",
		},
	}

	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resetViper(t)

			file := filepath.Join(dir, "config"+string(rune('a'+i))+".yml")
			require.NoError(t, os.WriteFile(file, []byte(tc.yaml), 0o600))

			configValidateFile = file
			configValidateStrict = tc.strict
			t.Cleanup(func() {
				configValidateFile = ""
				configValidateStrict = false
			})

			cmd, out := testCommand()
			err := runConfigValidate(cmd, nil)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out.String(), tc.output)
		})
	}
}

func TestConfigValidateMissingFile(t *testing.T) {
	resetViper(t)

	configValidateFile = filepath.Join(t.TempDir(), "missing.yml")
	t.Cleanup(func() { configValidateFile = "" })

	cmd, _ := testCommand()
	assert.Error(t, runConfigValidate(cmd, nil))
}

func TestBuildCommand(t *testing.T) {
	resetViper(t)

	out := t.TempDir()
	buildOutDir = out
	buildBaseURL = "https://fusionprint.example"
	buildFormat = formatText
	t.Cleanup(func() {
		buildOutDir = "dist"
		buildBaseURL = ""
	})

	cmd, stdout := testCommand()
	require.NoError(t, runBuild(cmd, nil))

	assert.Contains(t, stdout.String(), "Exported 7 pages")
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, "services", "printing", "index.html"))
	assert.FileExists(t, filepath.Join(out, "404.html"))
	assert.FileExists(t, filepath.Join(out, "static", "site.css"))
	assert.FileExists(t, filepath.Join(out, "sitemap.xml"))
}

func TestBuildCommandRejectsTraversal(t *testing.T) {
	resetViper(t)

	buildOutDir = "../outside"
	t.Cleanup(func() { buildOutDir = "dist" })

	cmd, _ := testCommand()
	err := runBuild(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path traversal")
}

func TestAuditCommand(t *testing.T) {
	resetViper(t)

	cmd, out := testCommand()
	auditFormat = formatJSON
	t.Cleanup(func() { auditFormat = formatTable })
	require.NoError(t, runAudit(cmd, nil))

	var reports []accessibility.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))

	// five plain pages plus one report per wizard step
	require.Len(t, reports, 5+len(wizard.Steps()))
	for _, r := range reports {
		assert.Empty(t, r.Violations, r.Path)
	}
	assert.Equal(t, "/contact (step 3)", reports[len(reports)-1].Path)
}

func TestAuditCommandSelectedRoutes(t *testing.T) {
	resetViper(t)

	cmd, out := testCommand()
	auditFormat = formatTable
	require.NoError(t, runAudit(cmd, []string{"/about", "/services/"}))
	assert.Contains(t, out.String(), "2 pages audited, 0 errors, 0 warnings")

	err := runAudit(cmd, []string{"/pricing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown route")
}

func TestQuotesCommand(t *testing.T) {
	resetViper(t)

	dbPath := filepath.Join(t.TempDir(), "quotes.db")
	viper.Set("quotes.sink", config.SinkSQLite)
	viper.Set("quotes.sqlite_path", dbPath)

	store, err := quote.OpenSQLiteSink(dbPath, quote.DefaultSQLiteConfig())
	require.NoError(t, err)
	req := quote.NewRequest("session-1", wizard.Draft{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		Services: []string{"Logo", "Brochure"},
		Timeline: "1 Week",
	}, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, store.Deliver(context.Background(), req))
	require.NoError(t, store.Close())

	t.Run("masked", func(t *testing.T) {
		cmd, out := testCommand()
		quotesFormat = formatTable
		quotesFull = false

		require.NoError(t, runQuotes(cmd, nil))
		assert.Contains(t, out.String(), "j***@example.com")
		assert.Contains(t, out.String(), "Logo, Brochure")
		assert.NotContains(t, out.String(), "Jane Doe")
	})

	t.Run("full json", func(t *testing.T) {
		cmd, out := testCommand()
		quotesFormat = formatJSON
		quotesFull = true
		t.Cleanup(func() {
			quotesFormat = formatTable
			quotesFull = false
		})

		require.NoError(t, runQuotes(cmd, nil))

		var got []quote.Request
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, req.ID, got[0].ID)
		assert.Equal(t, "Jane Doe", got[0].Draft.Name)
	})
}

func TestQuotesCommandRequiresSQLite(t *testing.T) {
	resetViper(t)
	viper.Set("quotes.sink", config.SinkLog)

	cmd, _ := testCommand()
	err := runQuotes(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `quotes.sink is "log"`)
}

func TestFormatFlagValidation(t *testing.T) {
	var format string
	cmd := &cobra.Command{Use: "x"}
	addFormatFlag(cmd, &format, formatTable, formatTable, formatJSON)

	assert.NoError(t, cmd.Flags().Set("format", "json"))
	assert.Equal(t, "json", format)

	err := cmd.Flags().Set("format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: table, json")
	assert.Equal(t, "json", format)
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort("8080"))
	assert.NoError(t, ValidatePort("1"))
	assert.Error(t, ValidatePort("0"))
	assert.Error(t, ValidatePort("65536"))
	assert.Error(t, ValidatePort("http"))
}

func TestValidatePathArgument(t *testing.T) {
	testCases := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{"relative", "dist", false},
		{"nested", "build/public", false},
		{"absolute", "/tmp/site", false},
		{"dots in name", "site..old", false},
		{"empty", "  ", true},
		{"semicolon", "dist; rm -rf /", true},
		{"substitution", "$(whoami)", true},
		{"backtick", "`id`", true},
		{"parent", "../dist", true},
		{"windows parent", `out\..\..\etc`, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePathArgument(tc.arg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fusionprintdesign/fusionsite/internal/config"
	"github.com/fusionprintdesign/fusionsite/internal/logging"
	"github.com/fusionprintdesign/fusionsite/internal/quote"
)

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "List stored quote requests",
	Long: `List the most recent quote requests from the SQLite quote store.

Names, email addresses and phone numbers are masked unless --full is set.
Requires quotes.sink to be "sqlite" or "both".

Examples:
  fusionsite quotes
  fusionsite quotes --limit 5 --full
  fusionsite quotes -f json`,
	Args: cobra.NoArgs,
	RunE: runQuotes,
}

var (
	quotesLimit  int
	quotesFull   bool
	quotesFormat string
)

func init() {
	rootCmd.AddCommand(quotesCmd)

	quotesCmd.Flags().IntVar(&quotesLimit, "limit", 20, "Maximum number of requests to show")
	quotesCmd.Flags().BoolVar(&quotesFull, "full", false, "Show contact details unmasked")
	addFormatFlag(quotesCmd, &quotesFormat, formatTable, formatTable, formatJSON, formatYAML)
}

func runQuotes(cmd *cobra.Command, _ []string) error {
	if quotesLimit < 1 {
		return fmt.Errorf("--limit must be positive, got %d", quotesLimit)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Quotes.Sink != config.SinkSQLite && cfg.Quotes.Sink != config.SinkBoth {
		return fmt.Errorf("quotes.sink is %q, stored requests need %q or %q", cfg.Quotes.Sink, config.SinkSQLite, config.SinkBoth)
	}

	store, err := quote.OpenSQLiteSink(cfg.Quotes.SQLitePath, quote.DefaultSQLiteConfig())
	if err != nil {
		return fmt.Errorf("failed to open quote store: %w", err)
	}
	defer func() { _ = store.Close() }()

	requests, err := store.Recent(commandContext(cmd), quotesLimit)
	if err != nil {
		return fmt.Errorf("failed to read quote requests: %w", err)
	}

	if !quotesFull {
		for i := range requests {
			maskContact(&requests[i])
		}
	}

	out := cmd.OutOrStdout()
	if quotesFormat != formatTable {
		return writeStructured(out, quotesFormat, requests)
	}

	if len(requests) == 0 {
		fmt.Fprintln(out, "No quote requests stored.")
		return nil
	}

	w := newTable(out)
	fmt.Fprintln(w, "SUBMITTED\tNAME\tEMAIL\tSERVICES\tTIMELINE\tBUDGET")
	for _, r := range requests {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.SubmittedAt.Local().Format("2006-01-02 15:04"),
			r.Draft.Name,
			r.Draft.Email,
			strings.Join(r.Draft.Services, ", "),
			orDash(r.Draft.Timeline),
			orDash(r.Draft.Budget))
	}

	return w.Flush()
}

func maskContact(r *quote.Request) {
	r.Draft.Name = logging.Redact(r.Draft.Name)
	r.Draft.Email = logging.Redact(r.Draft.Email)
	r.Draft.Phone = logging.Redact(r.Draft.Phone)
	r.RemoteAddr = ""
	r.UserAgent = ""
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

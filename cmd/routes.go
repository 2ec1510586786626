package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fusionprintdesign/fusionsite/internal/pages"
)

var routesCmd = &cobra.Command{
	Use:     "routes",
	Aliases: []string{"ls"},
	Short:   "List the page routes",
	Args:    cobra.NoArgs,
	RunE:    runRoutes,
}

var routesFormat string

func init() {
	rootCmd.AddCommand(routesCmd)

	addFormatFlag(routesCmd, &routesFormat, formatTable, formatTable, formatJSON, formatYAML)
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	routes := pages.Routes()
	out := cmd.OutOrStdout()

	if routesFormat != formatTable {
		return writeStructured(out, routesFormat, routes)
	}

	w := newTable(out)
	fmt.Fprintln(w, "PATH\tNAME\tTITLE")
	for _, r := range routes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, r.Name, r.Title)
	}

	return w.Flush()
}

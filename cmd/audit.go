package cmd

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/fusionprintdesign/fusionsite/internal/accessibility"
	"github.com/fusionprintdesign/fusionsite/internal/components"
	"github.com/fusionprintdesign/fusionsite/internal/pages"
)

var auditCmd = &cobra.Command{
	Use:   "audit [path...]",
	Short: "Audit rendered pages for accessibility problems",
	Long: `Render each page and check it against the accessibility rules:
document language, title, heading structure, image alt text, form labels,
button names, duplicate ids and the skip link.

Every wizard step of the contact page is audited. Without arguments all
routes are checked.

Examples:
  fusionsite audit
  fusionsite audit /contact --strict
  fusionsite audit -f json`,
	RunE: runAudit,
}

var (
	auditFormat string
	auditStrict bool
)

func init() {
	rootCmd.AddCommand(auditCmd)

	addFormatFlag(auditCmd, &auditFormat, formatTable, formatTable, formatJSON, formatYAML)
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "Fail on warnings as well as errors")
}

// auditTarget is one rendered page state.
type auditTarget struct {
	label     string
	path      string
	component templ.Component
}

func auditTargets(paths []string) ([]auditTarget, error) {
	routes := pages.Routes()
	if len(paths) > 0 {
		routes = routes[:0]
		for _, p := range paths {
			r, ok := pages.Lookup(p)
			if !ok {
				return nil, fmt.Errorf("unknown route: %s", p)
			}
			routes = append(routes, r)
		}
	}

	var targets []auditTarget
	for _, r := range routes {
		if r.Path != "/contact" {
			targets = append(targets, auditTarget{label: r.Path, path: r.Path, component: pages.Render(r, pages.Data{})})
			continue
		}

		w := pages.NewWizard()
		for {
			targets = append(targets, auditTarget{
				label:     fmt.Sprintf("%s (step %d)", r.Path, w.Step()),
				path:      r.Path,
				component: pages.Render(r, pages.Data{Wizard: components.NewWizardView(w)}),
			})
			if !w.Advance() {
				break
			}
		}
	}

	return targets, nil
}

func runAudit(cmd *cobra.Command, args []string) error {
	targets, err := auditTargets(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	auditor := accessibility.NewAuditor(newLogger(cfg))

	reports := make([]*accessibility.Report, 0, len(targets))
	var errorCount, warningCount int
	for _, t := range targets {
		report, err := auditor.AuditComponent(ctx, t.path, t.component)
		if err != nil {
			return fmt.Errorf("audit %s: %w", t.label, err)
		}
		report.Path = t.label
		reports = append(reports, report)
		errorCount += report.Count(accessibility.SeverityError)
		warningCount += report.Count(accessibility.SeverityWarning)
	}

	out := cmd.OutOrStdout()
	if auditFormat != formatTable {
		if err := writeStructured(out, auditFormat, reports); err != nil {
			return err
		}
	} else {
		w := newTable(out)
		fmt.Fprintln(w, "PAGE\tSEVERITY\tRULE\tWCAG\tELEMENT\tMESSAGE")
		for _, r := range reports {
			for _, v := range r.Violations {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Path, v.Severity, v.Rule, v.WCAG, v.Element, v.Message)
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d pages audited, %d errors, %d warnings\n", len(reports), errorCount, warningCount)
	}

	if errorCount > 0 || (auditStrict && warningCount > 0) {
		return fmt.Errorf("accessibility audit failed: %s", strings.Join(summary(errorCount, warningCount), ", "))
	}

	return nil
}

func summary(errorCount, warningCount int) []string {
	var parts []string
	if errorCount > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", errorCount))
	}
	if warningCount > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", warningCount))
	}

	return parts
}

package accessibility

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/fusionprintdesign/fusionsite/internal/logging"
)

// DefaultRules returns every rule the auditor runs.
func DefaultRules() []Rule {
	return []Rule{
		{RuleLang, "HTML element must have a lang attribute", ImpactSerious, SeverityError, Criteria3_1_1},
		{RuleTitle, "Documents must contain a non-empty title element", ImpactSerious, SeverityError, Criteria2_4_2},
		{RuleSingleH1, "Pages must have exactly one h1", ImpactSerious, SeverityError, Criteria1_3_1},
		{RuleHeadingOrder, "Heading levels must not be skipped", ImpactModerate, SeverityError, Criteria1_3_1},
		{RuleAltText, "Images must have alternative text", ImpactCritical, SeverityError, Criteria1_1_1},
		{RuleFormLabel, "Form elements must have labels", ImpactCritical, SeverityError, Criteria3_3_2},
		{RuleButtonName, "Buttons must have accessible names", ImpactCritical, SeverityError, Criteria4_1_2},
		{RuleDuplicateID, "IDs must be unique", ImpactSerious, SeverityError, Criteria4_1_1},
		{RuleSkipLink, "Page should have a skip navigation link", ImpactModerate, SeverityWarning, Criteria2_4_1},
	}
}

// Auditor runs the rules against parsed documents.
type Auditor struct {
	rules  map[string]Rule
	order  []string
	logger logging.Logger
}

// NewAuditor creates an auditor with the default rules.
func NewAuditor(logger logging.Logger) *Auditor {
	a := &Auditor{
		rules:  make(map[string]Rule),
		logger: logger.WithComponent("accessibility"),
	}
	for _, r := range DefaultRules() {
		a.rules[r.ID] = r
		a.order = append(a.order, r.ID)
	}

	return a
}

// AuditComponent renders c and audits the result.
func (a *Auditor) AuditComponent(ctx context.Context, path string, c templ.Component) (*Report, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", path, err)
	}

	return a.Audit(ctx, path, &buf)
}

// Audit parses r as an HTML document and checks it.
func (a *Auditor) Audit(ctx context.Context, path string, r io.Reader) (*Report, error) {
	start := time.Now()

	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	d := collect(doc)
	report := &Report{Path: path, Title: d.title}

	checks := map[string]func(*document) []finding{
		RuleLang:         checkLang,
		RuleTitle:        checkTitle,
		RuleSingleH1:     checkSingleH1,
		RuleHeadingOrder: checkHeadingOrder,
		RuleAltText:      checkAltText,
		RuleFormLabel:    checkFormLabels,
		RuleButtonName:   checkButtonNames,
		RuleDuplicateID:  checkDuplicateIDs,
		RuleSkipLink:     checkSkipLink,
	}

	for _, id := range a.order {
		rule := a.rules[id]
		failures := checks[id](d)
		if len(failures) == 0 {
			report.Passed = append(report.Passed, id)
			continue
		}
		for _, f := range failures {
			report.Violations = append(report.Violations, Violation{
				Rule:     id,
				Severity: rule.Severity,
				WCAG:     rule.WCAG,
				Element:  f.element,
				Message:  f.message,
			})
		}
	}
	report.Duration = time.Since(start)

	a.logger.Debug(ctx, "Accessibility audit completed",
		"path", path,
		"violations", len(report.Violations),
		"passed_rules", len(report.Passed),
		"duration", report.Duration)

	return report, nil
}

// Rules returns the auditor's rules in evaluation order.
func (a *Auditor) Rules() []Rule {
	out := make([]Rule, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.rules[id])
	}

	return out
}

// document is the subset of a parsed page the checks look at.
type document struct {
	root     *html.Node
	title    string
	hasTitle bool
	elements []*html.Node
	labelFor map[string]bool
}

func collect(root *html.Node) *document {
	d := &document{root: root, labelFor: make(map[string]bool)}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			d.elements = append(d.elements, n)
			switch n.Data {
			case "title":
				d.hasTitle = true
				d.title = TextContent(n)
			case "label":
				if f, ok := attr(n, "for"); ok {
					d.labelFor[f] = true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return d
}

type finding struct {
	element string
	message string
}

func failure(n *html.Node, message string) finding {
	return finding{element: describe(n), message: message}
}

func documentFailure(message string) []finding {
	return []finding{{message: message}}
}

func checkLang(d *document) []finding {
	for _, n := range d.elements {
		if n.Data == "html" {
			if lang, ok := attr(n, "lang"); ok && strings.TrimSpace(lang) != "" {
				return nil
			}

			return []finding{failure(n, "html element has no lang attribute")}
		}
	}

	return documentFailure("document has no html element")
}

func checkTitle(d *document) []finding {
	switch {
	case !d.hasTitle:
		return documentFailure("document has no title element")
	case d.title == "":
		return documentFailure("title element is empty")
	default:
		return nil
	}
}

func checkSingleH1(d *document) []finding {
	count := 0
	for _, n := range d.elements {
		if n.Data == "h1" {
			count++
		}
	}
	if count == 1 {
		return nil
	}

	return documentFailure(fmt.Sprintf("found %d h1 elements, want 1", count))
}

func checkHeadingOrder(d *document) []finding {
	var failures []finding
	prev := 0
	for _, n := range d.elements {
		level := headingLevel(n.Data)
		if level == 0 {
			continue
		}
		if prev == 0 && level != 1 {
			failures = append(failures, failure(n, "first heading is not an h1"))
		} else if prev != 0 && level > prev+1 {
			failures = append(failures, failure(n, fmt.Sprintf("heading level jumps from h%d to h%d", prev, level)))
		}
		prev = level
	}

	return failures
}

func checkAltText(d *document) []finding {
	var failures []finding
	for _, n := range d.elements {
		if n.Data != "img" {
			continue
		}
		if _, ok := attr(n, "alt"); !ok {
			failures = append(failures, failure(n, "image has no alt attribute"))
		}
	}

	return failures
}

func checkFormLabels(d *document) []finding {
	var failures []finding
	for _, n := range d.elements {
		if !isFormControl(n) || hasLabel(d, n) {
			continue
		}
		failures = append(failures, failure(n, "form control has no label"))
	}

	return failures
}

func checkButtonNames(d *document) []finding {
	var failures []finding
	for _, n := range d.elements {
		if n.Data != "button" {
			continue
		}
		if TextContent(n) != "" || hasAttr(n, "aria-label") || hasAttr(n, "aria-labelledby") {
			continue
		}
		failures = append(failures, failure(n, "button has no accessible name"))
	}

	return failures
}

func checkDuplicateIDs(d *document) []finding {
	var failures []finding
	seen := make(map[string]bool)
	for _, n := range d.elements {
		id, ok := attr(n, "id")
		if !ok || id == "" {
			continue
		}
		if seen[id] {
			failures = append(failures, failure(n, fmt.Sprintf("id %q is used more than once", id)))
		}
		seen[id] = true
	}

	return failures
}

func checkSkipLink(d *document) []finding {
	for _, n := range d.elements {
		if n.Data != "a" {
			continue
		}
		if h, ok := attr(n, "href"); ok && strings.HasPrefix(h, "#") && h != "#" {
			return nil
		}
	}

	return documentFailure("no in-page link to skip navigation")
}

func isFormControl(n *html.Node) bool {
	switch n.Data {
	case "select", "textarea":
		return true
	case "input":
		t, _ := attr(n, "type")
		switch strings.ToLower(t) {
		case "hidden", "submit", "button", "reset", "image":
			return false
		}

		return true
	default:
		return false
	}
}

func hasLabel(d *document, n *html.Node) bool {
	if hasAttr(n, "aria-label") || hasAttr(n, "aria-labelledby") {
		return true
	}
	if id, ok := attr(n, "id"); ok && d.labelFor[id] {
		return true
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "label" {
			return true
		}
	}

	return false
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}

	return 0
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	v, ok := attr(n, key)

	return ok && strings.TrimSpace(v) != ""
}

func describe(n *html.Node) string {
	var b strings.Builder
	b.WriteString(n.Data)
	if id, ok := attr(n, "id"); ok {
		b.WriteString("#" + id)
	}
	if name, ok := attr(n, "name"); ok {
		b.WriteString("[name=" + name + "]")
	}

	return b.String()
}

// TextContent returns the whitespace-normalised text below n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(b.String()), " ")
}

// Headings returns the text of every element named tag in r, in document
// order.
func Headings(r io.Reader, tag string) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, TextContent(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return out, nil
}

package accessibility

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionprintdesign/fusionsite/internal/logging"
)

const cleanPage = `<!DOCTYPE html>
<html lang="en">
<head><title>Test Page</title></head>
<body>
<a href="#main">Skip to content</a>
<main id="main">
<h1>Heading</h1>
<h2>Section</h2>
<h3>Card</h3>
<h2>Another</h2>
<img src="a.png" alt="">
<form>
  <input type="hidden" name="step" value="1">
  <label for="name">Name</label><input id="name" name="name">
  <label><input type="checkbox" name="services" value="Logo"> Logo</label>
  <select aria-label="Timeline"><option>1 Week</option></select>
  <button type="submit">Send</button>
  <button type="button" aria-label="Toggle menu"></button>
</form>
</main>
</body>
</html>`

func audit(t *testing.T, doc string) *Report {
	t.Helper()

	report, err := NewAuditor(logging.Nop()).Audit(context.Background(), "/test", strings.NewReader(doc))
	require.NoError(t, err)

	return report
}

func rulesOf(r *Report) []string {
	var out []string
	for _, v := range r.Violations {
		out = append(out, v.Rule)
	}

	return out
}

func TestAuditCleanPage(t *testing.T) {
	report := audit(t, cleanPage)

	assert.Empty(t, report.Violations)
	assert.False(t, report.HasErrors())
	assert.Equal(t, "Test Page", report.Title)
	assert.Len(t, report.Passed, len(DefaultRules()))
}

func TestAuditViolations(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		rule string
	}{
		{
			name: "missing lang",
			doc:  `<html><head><title>x</title></head><body><a href="#m">s</a><h1>x</h1></body></html>`,
			rule: RuleLang,
		},
		{
			name: "empty title",
			doc:  `<html lang="en"><head><title> </title></head><body><a href="#m">s</a><h1>x</h1></body></html>`,
			rule: RuleTitle,
		},
		{
			name: "two h1",
			doc:  `<html lang="en"><head><title>x</title></head><body><a href="#m">s</a><h1>a</h1><h1>b</h1></body></html>`,
			rule: RuleSingleH1,
		},
		{
			name: "skipped heading level",
			doc:  `<html lang="en"><head><title>x</title></head><body><a href="#m">s</a><h1>a</h1><h3>b</h3></body></html>`,
			rule: RuleHeadingOrder,
		},
		{
			name: "image without alt",
			doc:  `<html lang="en"><head><title>x</title></head><body><a href="#m">s</a><h1>a</h1><img src="x.png"></body></html>`,
			rule: RuleAltText,
		},
		{
			name: "unlabelled input",
			doc:  `<html lang="en"><head><title>x</title></head><body><a href="#m">s</a><h1>a</h1><input id="email" name="email"></body></html>`,
			rule: RuleFormLabel,
		},
		{
			name: "empty button",
			doc:  `<html lang="en"><head><title>x</title></head><body><a href="#m">s</a><h1>a</h1><button></button></body></html>`,
			rule: RuleButtonName,
		},
		{
			name: "duplicate id",
			doc:  `<html lang="en"><head><title>x</title></head><body><a href="#m">s</a><h1 id="a">a</h1><p id="a">b</p></body></html>`,
			rule: RuleDuplicateID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := audit(t, tc.doc)
			assert.Equal(t, []string{tc.rule}, rulesOf(report))
			assert.True(t, report.HasErrors())
		})
	}
}

func TestSkipLinkIsWarning(t *testing.T) {
	report := audit(t, `<html lang="en"><head><title>x</title></head><body><h1>a</h1></body></html>`)

	require.Len(t, report.Violations, 1)
	assert.Equal(t, RuleSkipLink, report.Violations[0].Rule)
	assert.Equal(t, SeverityWarning, report.Violations[0].Severity)
	assert.False(t, report.HasErrors())
	assert.Equal(t, 1, report.Count(SeverityWarning))
}

func TestViolationElement(t *testing.T) {
	report := audit(t, `<html lang="en"><head><title>x</title></head><body><a href="#m">s</a><h1>a</h1><textarea id="note" name="note"></textarea></body></html>`)

	require.Len(t, report.Violations, 1)
	assert.Equal(t, "textarea#note[name=note]", report.Violations[0].Element)
}

func TestAuditComponent(t *testing.T) {
	c := templ.Raw(cleanPage)

	report, err := NewAuditor(logging.Nop()).AuditComponent(context.Background(), "/", c)
	require.NoError(t, err)
	assert.Empty(t, report.Violations)
}

func TestHeadings(t *testing.T) {
	got, err := Headings(strings.NewReader(`<h1>Where <span>Technology</span>
		Meets Creativity</h1><h2>x</h2>`), "h1")

	require.NoError(t, err)
	assert.Equal(t, []string{"Where Technology Meets Creativity"}, got)
}

package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionprintdesign/fusionsite/internal/accessibility"
	"github.com/fusionprintdesign/fusionsite/internal/components"
	"github.com/fusionprintdesign/fusionsite/internal/content"
	"github.com/fusionprintdesign/fusionsite/internal/logging"
	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

func renderRoute(t *testing.T, r Route, d Data) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Render(r, d).Render(context.Background(), &buf))

	return buf.Bytes()
}

func TestRoutes(t *testing.T) {
	expected := map[string]string{
		"/":                  "Where Technology Meets Creativity",
		"/services":          "Our Services",
		"/services/printing": "Printing Services",
		"/services/design":   "Design Services",
		"/about":             "About Fusion Print & Design",
		"/contact":           "Let's Work Together",
	}

	routes := Routes()
	require.Len(t, routes, len(expected))

	for _, r := range routes {
		t.Run(r.Name, func(t *testing.T) {
			assert.Equal(t, expected[r.Path], r.Heading)
			assert.NotEmpty(t, r.Title)
			assert.NotEmpty(t, r.Description)

			h1, err := accessibility.Headings(bytes.NewReader(renderRoute(t, r, Data{})), "h1")
			require.NoError(t, err)
			assert.Equal(t, []string{r.Heading}, h1)
		})
	}
}

func TestRoutesPassAudit(t *testing.T) {
	auditor := accessibility.NewAuditor(logging.Nop())

	for _, r := range Routes() {
		t.Run(r.Name, func(t *testing.T) {
			report, err := auditor.AuditComponent(context.Background(), r.Path, Render(r, Data{Preloader: true}))
			require.NoError(t, err)
			assert.Empty(t, report.Violations, "%+v", report.Violations)
		})
	}
}

func TestContactWizardStepsPassAudit(t *testing.T) {
	auditor := accessibility.NewAuditor(logging.Nop())
	route, ok := Lookup("/contact")
	require.True(t, ok)

	w := NewWizard()
	for _, step := range wizard.Steps() {
		require.Equal(t, step, w.Step())

		report, err := auditor.AuditComponent(context.Background(), route.Path, Render(route, Data{Wizard: components.NewWizardView(w)}))
		require.NoError(t, err)
		assert.Empty(t, report.Violations, "step %d: %+v", step, report.Violations)
		w.Advance()
	}
}

func TestRoutesReturnsCopy(t *testing.T) {
	a := Routes()
	a[0].Heading = "changed"

	assert.Equal(t, "Where Technology Meets Creativity", Routes()[0].Heading)
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("/services/design/")
	require.True(t, ok)
	assert.Equal(t, "design", r.Name)

	r, ok = Lookup("/")
	require.True(t, ok)
	assert.Equal(t, "home", r.Name)

	_, ok = Lookup("/pricing")
	assert.False(t, ok)
}

func TestBreadcrumbs(t *testing.T) {
	assert.Equal(t, []content.Link{{Label: "Home", Href: "/"}}, Breadcrumbs("/"))
	assert.Equal(t, []content.Link{
		{Label: "Home", Href: "/"},
		{Label: "Services", Href: "/services"},
		{Label: "Printing", Href: "/services/printing"},
	}, Breadcrumbs("/services/printing"))
}

func TestCanonical(t *testing.T) {
	r, _ := Lookup("/about")
	out := renderRoute(t, r, Data{BaseURL: "https://fusionprintdesign.com/"})

	assert.Contains(t, string(out), `href="https://fusionprintdesign.com/about"`)
}

func TestNotFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NotFound("/nope", Data{}).Render(context.Background(), &buf))

	h1, err := accessibility.Headings(bytes.NewReader(buf.Bytes()), "h1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Page Not Found"}, h1)
	assert.Contains(t, buf.String(), "/nope")
}

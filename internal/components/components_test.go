package components

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionprintdesign/fusionsite/internal/content"
	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))

	return b.String()
}

func newWizard() *wizard.Wizard {
	return wizard.New(wizard.Options{
		Services:  content.ServiceLabels(),
		Timelines: content.Timelines(),
		Budgets:   content.Budgets(),
	})
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++

	return 0, errors.New("closed")
}

func TestRenderStopsAfterFirstWriteError(t *testing.T) {
	w := &failingWriter{}
	err := Footer().Render(context.Background(), w)

	require.Error(t, err)
	assert.Equal(t, 1, w.writes)
}

func TestLayout(t *testing.T) {
	meta := PageMeta{
		Title:       "Our Services | Fusion Print & Design",
		Description: "Print & design",
		Path:        "/services/printing",
		Canonical:   "https://example.com/services/printing",
		Preloader:   true,
		Breadcrumbs: []content.Link{{Label: "Home", Href: "/"}, {Label: "Services", Href: "/services"}},
	}
	out := render(t, Layout(meta, PageHero("Our", "Services", "")))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<title>Our Services | Fusion Print &amp; Design</title>")
	assert.Contains(t, out, `<link rel="canonical" href="https://example.com/services/printing">`)
	assert.Contains(t, out, `class="preloader"`)
	assert.Contains(t, out, `data-reveal-duration=`)
	assert.Contains(t, out, `aria-label="Breadcrumb"`)
	assert.NotContains(t, out, "data-live-reload ")
}

func TestLayoutWithoutPreloader(t *testing.T) {
	out := render(t, Layout(PageMeta{Title: "x", Path: "/"}, Join()))

	assert.NotContains(t, out, `class="preloader"`)
	assert.NotContains(t, out, `aria-label="Breadcrumb"`)
}

func TestHeaderActiveLink(t *testing.T) {
	testCases := []struct {
		path   string
		active string
	}{
		{"/", `href="/" aria-current="page">Home`},
		{"/services", `href="/services" aria-current="page">Services`},
		{"/services/design", `href="/services" aria-current="page">Services`},
		{"/contact", `href="/contact" aria-current="page">Contact`},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			out := render(t, Header(tc.path))
			assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
			assert.Contains(t, out, `<a class="nav-link is-active" `+tc.active)
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, isActive("/", "/"))
	assert.False(t, isActive("/", "/about"))
	assert.True(t, isActive("/services", "/services/printing"))
	assert.False(t, isActive("/services", "/servicesx"))
}

func TestHero(t *testing.T) {
	out := render(t, Hero())

	assert.Equal(t, 1, strings.Count(out, "<h1"))
	assert.Contains(t, out, `data-typed-words="Technology,Creativity,Innovation,Excellence"`)
	assert.Contains(t, out, ">Technology</span> Meets Creativity</h1>")
	assert.Contains(t, out, "PRINTING")
	assert.Contains(t, out, "DESIGN")
}

func TestStatsRenderFinalValue(t *testing.T) {
	out := render(t, Stats(content.StatsSection(), content.HomeStats()))

	for _, s := range content.HomeStats() {
		assert.Contains(t, out, s.Label)
	}
	assert.Contains(t, out, `data-countup="`)
	assert.Contains(t, out, `data-duration="2500"`)
}

func TestTestimonialsStars(t *testing.T) {
	out := render(t, Testimonials())

	assert.Equal(t, len(content.Testimonials()), strings.Count(out, "★★★★★"))
	assert.Contains(t, out, `aria-label="5 out of 5 stars"`)
}

func TestClientLogosDuplicated(t *testing.T) {
	out := render(t, ClientLogos())
	logos := content.ClientLogos()

	assert.Equal(t, 2*len(logos), strings.Count(out, `class="client-logo glass"`))
	assert.Equal(t, len(logos), strings.Count(out, `class="client-logo glass" aria-hidden="true"`))
	assert.Contains(t, out, `class="marquee-track reverse"`)
}

func TestPageHero(t *testing.T) {
	out := render(t, PageHero("About", "Fusion Print & Design", "intro"))

	assert.Contains(t, out, `About <span class="text-gradient">Fusion Print &amp; Design</span></h1>`)
	assert.Contains(t, out, "intro")
}

func TestPrintingDetail(t *testing.T) {
	out := render(t, PrintingDetail())

	for _, s := range content.PrintingServices() {
		assert.Contains(t, out, `id="`+s.Slug+`"`)
		assert.Contains(t, out, `href="#`+s.Slug+`"`)
	}
	for _, m := range content.Materials() {
		assert.Contains(t, out, m.Name)
	}
	assert.Contains(t, out, "2400 DPI")
}

func TestDesignDetail(t *testing.T) {
	out := render(t, DesignDetail())

	for _, d := range content.Disciplines() {
		assert.Contains(t, out, `id="`+d.ID+`"`)
	}
	assert.Equal(t, 2, strings.Count(out, "is-default"))
	assert.Contains(t, out, "Our Process")
}

func TestContactWizardSteps(t *testing.T) {
	w := newWizard()

	t.Run("contact", func(t *testing.T) {
		out := render(t, ContactWizard(NewWizardView(w)))
		assert.Contains(t, out, `<input type="hidden" name="step" value="1">`)
		assert.Contains(t, out, `id="name" name="name" type="text" value="" required>`)
		assert.Contains(t, out, `type="email"`)
		assert.Contains(t, out, `type="tel"`)
		assert.Contains(t, out, "Next: Project Details")
		assert.NotContains(t, out, `value="back"`)
		assert.Contains(t, out, `aria-current="step"`)
	})

	t.Run("project", func(t *testing.T) {
		w.Advance()
		_, err := w.Toggle("Logo")
		require.NoError(t, err)

		out := render(t, ContactWizard(NewWizardView(w)))
		assert.Contains(t, out, `type="checkbox" id="svc-design-logo" name="services" value="Logo" checked>`)
		assert.Contains(t, out, `id="svc-design-invitation-greeting-card"`)
		assert.Contains(t, out, `<textarea id="projectDetails"`)
		assert.Contains(t, out, `formnovalidate`)
		assert.Contains(t, out, "Next: Additional Information")
	})

	t.Run("additional", func(t *testing.T) {
		w.Advance()
		require.NoError(t, w.Set(wizard.FieldTimeline, "1 Week"))

		out := render(t, ContactWizard(NewWizardView(w)))
		assert.Contains(t, out, `<option value="1 Week" selected>1 Week</option>`)
		assert.Contains(t, out, `<option value="">Select timeline</option>`)
		assert.Contains(t, out, `id="budget"`)
		assert.Contains(t, out, `value="submit"`)
		assert.Contains(t, out, "Submit Quote Request")
	})

	t.Run("submitted", func(t *testing.T) {
		_, err := w.Submit()
		require.NoError(t, err)

		view := NewWizardView(w)
		view.BannerDuration = 5 * time.Second
		out := render(t, ContactWizard(view))
		assert.Contains(t, out, `data-autodismiss="5000"`)
		assert.Contains(t, out, `role="status"`)
		assert.Contains(t, out, "Services requested: Logo")
		assert.Contains(t, out, `value="reset"`)
		assert.NotContains(t, out, `aria-current="step"`)
		assert.NotContains(t, out, `name="step"`)
	})
}

func TestContactWizardError(t *testing.T) {
	view := NewWizardView(newWizard())
	view.Error = "That service is not offered."

	out := render(t, ContactWizard(view))
	assert.Contains(t, out, `role="alert">That service is not offered.</div>`)
}

func TestContactSidebar(t *testing.T) {
	out := render(t, ContactSidebar())

	assert.Contains(t, out, `href="tel:1234567890"`)
	assert.Contains(t, out, `href="mailto:info@fusionprintdesign.com"`)
	assert.Contains(t, out, "Business Hours")
	assert.Contains(t, out, "24-hour response guarantee")
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "invitation-greeting-card", Slug("Invitation/greeting card"))
	assert.Equal(t, "maintenance-support", Slug("Maintenance & Support"))
	assert.Equal(t, "2d-3d-animation", Slug("2D/3D Animation"))
}

func TestSpreadAttributesSorted(t *testing.T) {
	out := render(t, Hero())

	assert.Contains(t, out, `<h1 class="hero-tagline" data-animate="hero-text" style="--motion-delay:1.5s">`)
}

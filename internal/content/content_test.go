package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertUnique(t *testing.T, what string, values []string) {
	t.Helper()

	seen := make(map[string]bool, len(values))
	for _, v := range values {
		assert.False(t, seen[v], "%s: duplicate %q", what, v)
		seen[v] = true
	}
}

func TestServiceLabelsAreUnique(t *testing.T) {
	labels := ServiceLabels()
	require.Len(t, labels, 12+16+8)
	assertUnique(t, "service labels", labels)
	assert.Contains(t, labels, "Logo")
	assert.Contains(t, labels, "Brochure")
}

func TestOptionLists(t *testing.T) {
	assertUnique(t, "timelines", Timelines())
	assertUnique(t, "budgets", Budgets())
	assert.Equal(t, "ASAP (Rush)", Timelines()[0])
	assert.Equal(t, "Flexible", Timelines()[len(Timelines())-1])
}

func TestInternalLinksPointAtKnownPaths(t *testing.T) {
	known := map[string]bool{"/": true, "/services": true, "/services/printing": true, "/services/design": true, "/about": true, "/contact": true}

	var hrefs []string
	for _, l := range Navigation() {
		hrefs = append(hrefs, l.Href)
	}
	for _, l := range FooterServices() {
		hrefs = append(hrefs, l.Href)
	}
	p, d := Hero()
	for _, c := range append(p.Chips, d.Chips...) {
		hrefs = append(hrefs, c.Href)
	}
	for _, f := range FeaturedServices() {
		hrefs = append(hrefs, f.Href)
	}
	for _, c := range ServiceCards() {
		hrefs = append(hrefs, c.Href)
	}
	for _, cta := range []CallToAction{ServicesCTA(), PrintingCTA(), DesignCTA(), AboutCTA(), ValuePropsCTA(), TestimonialsCTA()} {
		hrefs = append(hrefs, cta.Button.Href)
	}

	for _, h := range hrefs {
		assert.True(t, known[h], "unknown internal link %q", h)
	}
}

func TestDisciplines(t *testing.T) {
	ds := Disciplines()
	require.Len(t, ds, 4)
	assert.Equal(t, "graphic", ds[0].ID)

	var ids []string
	for _, d := range ds {
		ids = append(ids, d.ID)
		assert.Len(t, d.Process, 4, d.ID)
		assert.NotEmpty(t, d.Services, d.ID)
	}
	assertUnique(t, "discipline ids", ids)
}

func TestPrintingServices(t *testing.T) {
	var slugs []string
	for _, s := range PrintingServices() {
		slugs = append(slugs, s.Slug)
		assert.Len(t, s.Specs, 4, s.Title)
		assert.Equal(t, strings.ToLower(s.Slug), s.Slug)
	}
	assertUnique(t, "printing slugs", slugs)
}

func TestTestimonialsAreFiveStar(t *testing.T) {
	for _, tm := range Testimonials() {
		assert.Equal(t, 5, tm.Rating, tm.Name)
	}
}

func TestTimelineIsChronological(t *testing.T) {
	tl := Timeline()
	for i := 1; i < len(tl); i++ {
		assert.Less(t, tl[i-1].Year, tl[i].Year)
	}
}

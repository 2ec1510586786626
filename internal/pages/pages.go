// Package pages is the registry of the site's routes. Each route pairs its
// path and metadata with the body it renders inside the shared layout.
package pages

import (
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fusionprintdesign/fusionsite/internal/components"
	"github.com/fusionprintdesign/fusionsite/internal/content"
	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

// Data carries the request-specific state a page may render.
type Data struct {
	// Wizard is only read by the contact page. A zero value renders a fresh
	// wizard on its first step.
	Wizard     components.WizardView
	Preloader  bool
	LiveReload bool
	BaseURL    string
}

// Route is one page of the site.
type Route struct {
	Path        string `json:"path" yaml:"path"`
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	Heading     string `json:"heading" yaml:"heading"`
	Description string `json:"description" yaml:"description"`

	Body func(Data) templ.Component `json:"-" yaml:"-"`
}

var routes = []Route{
	{
		Path:        "/",
		Name:        "home",
		Title:       content.Business().Name + " | " + content.Business().Tagline,
		Heading:     "Where Technology Meets Creativity",
		Description: "Printing and design services under one roof: digital and offset printing, UV coating, finishing, graphic design, web development and video production.",
		Body:        homeBody,
	},
	{
		Path:        "/services",
		Name:        "services",
		Heading:     "Our Services",
		Description: content.ServicesIntro,
		Body: func(Data) templ.Component {
			return components.Join(
				components.PageHero("Our", "Services", content.ServicesIntro),
				components.ServiceCatalogue(),
			)
		},
	},
	{
		Path:        "/services/printing",
		Name:        "printing",
		Heading:     "Printing Services",
		Description: content.PrintingIntro,
		Body: func(Data) templ.Component {
			return components.Join(
				components.PageHero("Printing", "Services", content.PrintingIntro),
				components.PrintingDetail(),
			)
		},
	},
	{
		Path:        "/services/design",
		Name:        "design",
		Heading:     "Design Services",
		Description: content.DesignIntro,
		Body: func(Data) templ.Component {
			return components.Join(
				components.PageHero("Design", "Services", content.DesignIntro),
				components.DesignDetail(),
			)
		},
	},
	{
		Path:        "/about",
		Name:        "about",
		Heading:     "About Fusion Print & Design",
		Description: content.AboutIntro,
		Body: func(Data) templ.Component {
			return components.Join(
				components.PageHero("About", "Fusion Print & Design", content.AboutIntro),
				components.AboutStory(),
				components.CoreValues(),
				components.Timeline(),
			)
		},
	},
	{
		Path:        "/contact",
		Name:        "contact",
		Heading:     "Let's Work Together",
		Description: content.QuoteIntro,
		Body:        contactBody,
	},
}

func init() {
	for i := range routes {
		if routes[i].Title == "" {
			routes[i].Title = routes[i].Heading + " | " + content.Business().Name
		}
	}
}

func homeBody(Data) templ.Component {
	return components.Join(
		components.Hero(),
		components.Stats(content.StatsSection(), content.HomeStats()),
		components.FeaturedServices(),
		components.ValueProps(),
		components.Testimonials(),
		components.ClientLogos(),
	)
}

func contactBody(d Data) templ.Component {
	view := d.Wizard
	if !view.Step.Valid() {
		view = components.NewWizardView(NewWizard())
	}

	return components.Join(
		components.PageHero("Let's Work", "Together", content.QuoteIntro),
		components.ContactSection(view),
	)
}

// NewWizard returns an empty wizard bound to the site catalogues.
func NewWizard() *wizard.Wizard {
	return wizard.New(wizard.Options{
		Services:  content.ServiceLabels(),
		Timelines: content.Timelines(),
		Budgets:   content.Budgets(),
	})
}

// Routes returns every page in navigation order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)

	return out
}

// Lookup finds the route serving path. A trailing slash is ignored.
func Lookup(path string) (Route, bool) {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}

	return Route{}, false
}

// Render wraps the route body in the site layout.
func Render(r Route, d Data) templ.Component {
	return components.Layout(meta(r.Path, r.Title, r.Description, d), r.Body(d))
}

// NotFound renders the 404 page for path.
func NotFound(path string, d Data) templ.Component {
	body := components.Join(
		components.PageHero("Page", "Not Found", "The page "+path+" does not exist. It may have moved, or the link may be mistyped."),
		components.CTA(content.CallToAction{
			Title:  "Looking for something?",
			Text:   "Head back to the home page or tell us what you need.",
			Button: content.Link{Label: "Back to Home", Href: "/"},
		}),
	)
	m := meta(path, "Page Not Found | "+content.Business().Name, "Page not found", d)
	m.Breadcrumbs = nil

	return components.Layout(m, body)
}

func meta(path, title, description string, d Data) components.PageMeta {
	m := components.PageMeta{
		Title:       title,
		Description: description,
		Path:        path,
		Preloader:   d.Preloader,
		LiveReload:  d.LiveReload,
		Breadcrumbs: Breadcrumbs(path),
	}
	if d.BaseURL != "" {
		m.Canonical = strings.TrimSuffix(d.BaseURL, "/") + path
	}

	return m
}

// Breadcrumbs derives the trail for path from its segments:
// "/services/printing" gives Home, Services, Printing.
func Breadcrumbs(path string) []content.Link {
	trail := []content.Link{{Label: "Home", Href: "/"}}
	caser := cases.Title(language.English)

	current := ""
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg == "" {
			continue
		}
		current += "/" + seg
		trail = append(trail, content.Link{
			Label: caser.String(strings.ReplaceAll(seg, "-", " ")),
			Href:  current,
		})
	}

	return trail
}

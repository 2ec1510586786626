// Package components renders the site's sections as templ components. The
// markup lives in the .templ files; the *_templ.go files next to them are
// generated by templ and must not be edited by hand.
package components

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.906 generate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fusionprintdesign/fusionsite/internal/animation"
	"github.com/fusionprintdesign/fusionsite/internal/content"
	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

// PageMeta is everything Layout needs besides the page body.
type PageMeta struct {
	Title       string
	Description string
	Path        string
	Canonical   string
	Preloader   bool
	LiveReload  bool
	Breadcrumbs []content.Link
}

// Wizard form actions posted in the "action" field.
const (
	ActionNext   = "next"
	ActionBack   = "back"
	ActionSubmit = "submit"
	ActionReset  = "reset"
)

// WizardView is the render state of the contact wizard.
type WizardView struct {
	Step           wizard.Step
	Draft          wizard.Draft
	Submitted      bool
	Categories     []content.ServiceCategory
	Timelines      []string
	Budgets        []string
	Error          string
	BannerDuration time.Duration
	Action         string
	ToggleURL      string
}

// NewWizardView snapshots w with the site catalogues.
func NewWizardView(w *wizard.Wizard) WizardView {
	return WizardView{
		Step:       w.Step(),
		Draft:      w.Draft(),
		Submitted:  w.Submitted(),
		Categories: content.QuoteCategories(),
		Timelines:  content.Timelines(),
		Budgets:    content.Budgets(),
		Action:     "/contact",
		ToggleURL:  "/contact/services/toggle",
	}
}

// nextAction is the primary button's action on step.
func nextAction(step wizard.Step) string {
	if step == wizard.LastStep {
		return ActionSubmit
	}

	return ActionNext
}

// isActive treats a section root as active for its sub-pages, except for the
// home link which only matches itself.
func isActive(link, path string) bool {
	if link == "/" {
		return path == "/"
	}

	return path == link || len(path) > len(link) && path[:len(link)+1] == link+"/"
}

func telDigits(phone string) string {
	out := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			out = append(out, r)
		}
	}

	return string(out)
}

// alternate picks the slide-in direction of the index-th row of a zigzag
// layout.
func alternate(index int) string {
	if index%2 == 1 {
		return animation.FadeInRight
	}

	return animation.FadeInLeft
}

// marqueeRows splits the client logos into the two scrolling rows.
func marqueeRows(logos []string) [][]string {
	half := len(logos) / 2

	return [][]string{logos[:half], logos[half:]}
}

func millis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

func checkboxID(category, service string) string {
	return "svc-" + category + "-" + Slug(service)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a label into an id fragment: "Invitation/greeting card" becomes
// "invitation-greeting-card".
func Slug(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

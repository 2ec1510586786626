package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/fusionprintdesign/fusionsite/internal/assets"
	"github.com/fusionprintdesign/fusionsite/internal/components"
	siteerrors "github.com/fusionprintdesign/fusionsite/internal/errors"
	"github.com/fusionprintdesign/fusionsite/internal/pages"
	"github.com/fusionprintdesign/fusionsite/internal/quote"
	"github.com/fusionprintdesign/fusionsite/internal/session"
	"github.com/fusionprintdesign/fusionsite/internal/version"
	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

// maxFormBytes bounds wizard and toggle request bodies.
const maxFormBytes = 64 << 10

var (
	errUnknownAction = siteerrors.NewValidationError("WIZARD_UNKNOWN_ACTION", "unknown wizard action")
	errQuoteDelivery = siteerrors.NewNetworkError("QUOTE_DELIVERY", "failed to deliver quote request", nil)
)

func (s *Server) pageData() pages.Data {
	return pages.Data{
		Preloader:  s.cfg.Site.Preloader,
		LiveReload: s.hub != nil,
		BaseURL:    s.cfg.Site.BaseURL,
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			s.logger.Error(r.Context(), err, "failed to render page", "path", r.URL.Path)

			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

func (s *Server) handlePage(route pages.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusOK, pages.Render(route, s.pageData()))
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, pages.NotFound(r.URL.Path, s.pageData()))
}

func (s *Server) renderContact(w http.ResponseWriter, r *http.Request, status int, view components.WizardView) {
	route, _ := pages.Lookup("/contact")
	view.BannerDuration = s.cfg.Contact.SuccessBanner

	d := s.pageData()
	d.Wizard = view

	w.Header().Set("Cache-Control", "no-store")
	s.render(w, r, status, pages.Render(route, d))
}

// handleContact shows the visitor's wizard. A submitted wizard shows its
// success banner once and is then reset for the next request.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := session.Ensure(w, r, s.cookie)

	view := components.NewWizardView(pages.NewWizard())
	found, err := s.store.Lookup(id, func(wz *wizard.Wizard) error {
		view = components.NewWizardView(wz)
		if wz.Submitted() {
			wz.Reset()
		}

		return nil
	})
	if err != nil {
		s.logger.Error(ctx, err, "failed to load wizard session")
	}
	if found && view.Submitted {
		s.logger.Debug(ctx, "success banner shown, wizard reset")
	}

	s.renderContact(w, r, http.StatusOK, view)
}

// handleContactPost applies one wizard transition and redirects back to the
// contact page. Validation and delivery failures re-render the form with a
// banner instead.
func (s *Server) handleContactPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)

		return
	}

	id := session.Ensure(w, r, s.cookie)
	action := r.PostFormValue("action")

	var view components.WizardView
	err := s.store.Update(id, func(wz *wizard.Wizard) error {
		err := s.apply(ctx, r, id, wz, action)
		view = components.NewWizardView(wz)

		return err
	})
	s.metrics.transitions.WithLabelValues(actionLabel(action), result(err)).Inc()

	if err != nil {
		if siteerrors.IsType(err, siteerrors.ErrorTypeValidation) {
			s.logger.Info(ctx, "wizard post rejected", "action", action, "error", err.Error())
		}
		view.Error = visitorMessage(err)
		s.renderContact(w, r, siteerrors.StatusCode(err), view)

		return
	}

	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

// apply runs one posted action against the visitor's wizard. It is called
// with the session locked.
func (s *Server) apply(ctx context.Context, r *http.Request, id string, wz *wizard.Wizard, action string) error {
	if action == components.ActionReset {
		wz.Reset()

		return nil
	}
	if wz.Submitted() {
		return nil
	}

	// A post from another tab or the back button no longer matches the
	// session's step; applying it would write fields into the wrong panel.
	if posted := r.PostFormValue("step"); posted != "" && posted != strconv.Itoa(int(wz.Step())) {
		s.logger.Debug(ctx, "ignoring stale wizard post", "posted_step", posted, "step", int(wz.Step()))

		return nil
	}

	if err := applyFields(wz, r.PostForm); err != nil {
		return err
	}

	switch action {
	case components.ActionNext:
		wz.Advance()
	case components.ActionBack:
		wz.Retreat()
	case components.ActionSubmit:
		return s.submit(ctx, r, id, wz)
	default:
		e := *errUnknownAction

		return e.WithContext("action", action)
	}

	return nil
}

// applyFields stores the posted values of the current step. Fields absent
// from the form keep their values; the service checkboxes are replaced as a
// set because unticked boxes are not posted.
func applyFields(wz *wizard.Wizard, form url.Values) error {
	step := wz.Step()
	for _, f := range wizard.FieldsFor(step) {
		if values, ok := form[string(f)]; ok && len(values) > 0 {
			if err := wz.Set(f, values[0]); err != nil {
				return err
			}
		}
	}
	if step == wizard.StepProject {
		return wz.ReplaceServices(form[wizard.ServicesField])
	}

	return nil
}

// submit hands the draft to the sink before marking the wizard submitted,
// so a failed delivery leaves the visitor's answers in place for a retry.
func (s *Server) submit(ctx context.Context, r *http.Request, id string, wz *wizard.Wizard) error {
	if wz.Step() != wizard.LastStep {
		_, err := wz.Submit()

		return err
	}

	req := quote.NewRequest(id, wz.Draft(), s.now())
	req.RemoteAddr = clientIP(r)
	req.UserAgent = r.UserAgent()

	if err := s.sink.Deliver(ctx, req); err != nil {
		s.metrics.submissions.WithLabelValues("failed").Inc()
		s.logger.Error(ctx, err, "quote delivery failed", "quote_id", req.ID)

		return siteerrors.NewNetworkError(errQuoteDelivery.Code, errQuoteDelivery.Message, err).
			WithContext("quote_id", req.ID)
	}

	if _, err := wz.Submit(); err != nil {
		return err
	}

	s.metrics.submissions.WithLabelValues("delivered").Inc()
	s.logger.Info(ctx, "quote request delivered",
		"quote_id", req.ID,
		"services", len(req.Draft.Services),
		"timeline", req.Draft.Timeline)

	return nil
}

type toggleResponse struct {
	Service  string   `json:"service"`
	Selected bool     `json:"selected"`
	Services []string `json:"services"`
}

// handleServiceToggle flips one service checkbox for the progressive
// enhancement script and returns the resulting selection.
func (s *Server) handleServiceToggle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form"})

		return
	}

	id := session.Ensure(w, r, s.cookie)
	resp := toggleResponse{Service: r.PostFormValue("service")}

	err := s.store.Update(id, func(wz *wizard.Wizard) error {
		selected, err := wz.Toggle(resp.Service)
		resp.Selected = selected
		resp.Services = wz.Draft().Services

		return err
	})
	s.metrics.toggles.WithLabelValues(result(err)).Inc()

	if err != nil {
		writeJSON(w, siteerrors.StatusCode(err), map[string]string{"error": visitorMessage(err)})

		return
	}
	if resp.Services == nil {
		resp.Services = []string{}
	}

	writeJSON(w, http.StatusOK, resp)
}

type healthResponse struct {
	Status      string    `json:"status"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Sessions    int       `json:"sessions"`
	Timestamp   time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "healthy",
		Version:     version.GetShortVersion(),
		Environment: s.cfg.Server.Environment,
		Sessions:    s.store.Len(),
		Timestamp:   s.now().UTC(),
	})
}

func (s *Server) handleMotionCSS(w http.ResponseWriter, r *http.Request) {
	http.ServeContent(w, r, assets.MotionStylesheet, assets.ModTime, bytes.NewReader(s.motion))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// visitorMessage turns a wizard error into banner text.
func visitorMessage(err error) string {
	switch {
	case errors.Is(err, wizard.ErrUnknownService):
		return "One of the selected services is not something we offer. Please choose from the list."
	case errors.Is(err, wizard.ErrInvalidChoice):
		return "Please choose a timeline and budget from the options provided."
	case errors.Is(err, wizard.ErrNotFinalStep):
		return "Please complete every step before submitting your request."
	case errors.Is(err, errQuoteDelivery):
		return "We couldn't send your request just now. Your answers are saved, please try again in a moment."
	case errors.Is(err, errUnknownAction):
		return "That action isn't available. Please use the buttons below the form."
	default:
		return "Something went wrong. Please try again."
	}
}

func actionLabel(action string) string {
	switch action {
	case components.ActionNext, components.ActionBack, components.ActionSubmit, components.ActionReset:
		return action
	default:
		return "unknown"
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

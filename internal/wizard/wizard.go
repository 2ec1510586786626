package wizard

import (
	"fmt"
	"slices"
	"strings"

	siteerrors "github.com/fusionprintdesign/fusionsite/internal/errors"
)

var (
	ErrUnknownField   = siteerrors.NewValidationError("WIZARD_UNKNOWN_FIELD", "unknown form field")
	ErrInvalidChoice  = siteerrors.NewValidationError("WIZARD_INVALID_CHOICE", "value is not one of the offered options")
	ErrUnknownService = siteerrors.NewValidationError("WIZARD_UNKNOWN_SERVICE", "service is not in the catalogue")
	ErrNotFinalStep   = siteerrors.NewValidationError("WIZARD_NOT_FINAL_STEP", "quote can only be submitted from the last step")
	ErrSubmitted      = siteerrors.NewValidationError("WIZARD_SUBMITTED", "quote request was already submitted")
)

// fail copies a sentinel so callers can attach context without touching the
// shared value; errors.Is still matches on type and code.
func fail(sentinel *siteerrors.SiteError, key string, value interface{}) error {
	e := *sentinel
	e.Context = nil

	return e.WithContext(key, value)
}

// Options lists the choices the wizard accepts. An empty list accepts any
// value for that field.
type Options struct {
	Services  []string
	Timelines []string
	Budgets   []string
}

// Wizard is the per-visitor state machine. It is not safe for concurrent use;
// the session store serialises access.
type Wizard struct {
	opts      Options
	step      Step
	draft     Draft
	submitted bool
}

// New returns a wizard on the first step with an empty draft.
func New(opts Options) *Wizard {
	return &Wizard{opts: opts, step: FirstStep}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Submitted reports whether the quote request has been sent.
func (w *Wizard) Submitted() bool { return w.submitted }

// Draft returns a copy of the current answers.
func (w *Wizard) Draft() Draft { return w.draft.Clone() }

// Options returns the accepted choices.
func (w *Wizard) Options() Options { return w.opts }

// Advance moves to the next step. It reports false and changes nothing on the
// last step or after submission.
func (w *Wizard) Advance() bool {
	if w.submitted || w.step >= LastStep {
		return false
	}
	w.step++

	return true
}

// Retreat moves to the previous step. It reports false and changes nothing on
// the first step or after submission.
func (w *Wizard) Retreat() bool {
	if w.submitted || w.step <= FirstStep {
		return false
	}
	w.step--

	return true
}

// Set stores one single-value field. Empty values are always accepted so a
// visitor can clear a choice.
func (w *Wizard) Set(f Field, value string) error {
	if w.submitted {
		return fail(ErrSubmitted, "field", string(f))
	}
	if f.Step() == 0 {
		return fail(ErrUnknownField, "field", string(f))
	}

	value = strings.TrimSpace(value)
	if value != "" {
		var allowed []string
		switch f {
		case FieldTimeline:
			allowed = w.opts.Timelines
		case FieldBudget:
			allowed = w.opts.Budgets
		}
		if len(allowed) > 0 && !slices.Contains(allowed, value) {
			return fail(ErrInvalidChoice, string(f), value)
		}
	}

	w.draft.set(f, value)

	return nil
}

// Toggle flips the selection of a service label and reports whether it is
// selected afterwards. Toggling the same label twice restores the prior set.
func (w *Wizard) Toggle(label string) (bool, error) {
	if w.submitted {
		return false, fail(ErrSubmitted, "service", label)
	}
	if len(w.opts.Services) > 0 && !slices.Contains(w.opts.Services, label) {
		return false, fail(ErrUnknownService, "service", label)
	}

	if i := slices.Index(w.draft.Services, label); i >= 0 {
		w.draft.Services = slices.Delete(w.draft.Services, i, i+1)

		return false, nil
	}
	w.draft.Services = append(w.draft.Services, label)

	return true, nil
}

// ReplaceServices makes the selection equal to labels (duplicates ignored).
// It toggles only the labels that differ so the existing order is kept.
func (w *Wizard) ReplaceServices(labels []string) error {
	if w.submitted {
		return fail(ErrSubmitted, "services", labels)
	}

	want := make([]string, 0, len(labels))
	for _, l := range labels {
		if !slices.Contains(want, l) {
			want = append(want, l)
		}
	}

	for _, l := range want {
		if len(w.opts.Services) > 0 && !slices.Contains(w.opts.Services, l) {
			return fail(ErrUnknownService, "service", l)
		}
	}

	for _, l := range slices.Clone(w.draft.Services) {
		if !slices.Contains(want, l) {
			if _, err := w.Toggle(l); err != nil {
				return err
			}
		}
	}
	for _, l := range want {
		if !w.draft.HasService(l) {
			if _, err := w.Toggle(l); err != nil {
				return err
			}
		}
	}

	return nil
}

// Submit marks the request as sent and returns a snapshot of the answers.
// It is only allowed from the last step.
func (w *Wizard) Submit() (Draft, error) {
	if w.submitted {
		return Draft{}, fail(ErrSubmitted, "step", int(w.step))
	}
	if w.step != LastStep {
		return Draft{}, fail(ErrNotFinalStep, "step", int(w.step))
	}
	w.submitted = true

	return w.draft.Clone(), nil
}

// Reset returns to the first step with an empty draft.
func (w *Wizard) Reset() {
	w.step = FirstStep
	w.draft = Draft{}
	w.submitted = false
}

func (w *Wizard) String() string {
	return fmt.Sprintf("wizard{%s submitted=%t services=%d}", w.step, w.submitted, len(w.draft.Services))
}

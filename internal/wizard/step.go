// Package wizard implements the contact page quote-request wizard as a small
// state machine: three ordered steps, a draft of the visitor's answers and a
// terminal submitted state that only Reset leaves.
package wizard

import "fmt"

// Step is a position in the wizard, always between FirstStep and LastStep.
type Step int

const (
	StepContact Step = iota + 1
	StepProject
	StepAdditional
)

const (
	FirstStep = StepContact
	LastStep  = StepAdditional
)

// Steps lists every step in order.
func Steps() []Step {
	return []Step{StepContact, StepProject, StepAdditional}
}

// Valid reports whether s is inside the wizard bounds.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title is the heading shown above the step's panel.
func (s Step) Title() string {
	switch s {
	case StepContact:
		return "Contact Information"
	case StepProject:
		return "Project Details"
	case StepAdditional:
		return "Additional Information"
	default:
		return ""
	}
}

// NextLabel is the caption of the button that leaves s forward.
func (s Step) NextLabel() string {
	switch s {
	case StepContact:
		return "Next: " + StepProject.Title()
	case StepProject:
		return "Next: " + StepAdditional.Title()
	default:
		return "Submit Quote Request"
	}
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}

	return fmt.Sprintf("step %d: %s", int(s), s.Title())
}

// Package accessibility audits rendered pages for the structural checks the
// site guarantees: document language and title, a single h1, ordered
// headings, labelled form controls, named buttons, image alternatives and
// unique ids.
package accessibility

import "time"

// WCAGCriteria is a WCAG 2 success criterion number.
type WCAGCriteria string

const (
	Criteria1_1_1 WCAGCriteria = "1.1.1" // Non-text Content
	Criteria1_3_1 WCAGCriteria = "1.3.1" // Info and Relationships
	Criteria2_4_1 WCAGCriteria = "2.4.1" // Bypass Blocks
	Criteria2_4_2 WCAGCriteria = "2.4.2" // Page Titled
	Criteria2_4_6 WCAGCriteria = "2.4.6" // Headings and Labels
	Criteria3_1_1 WCAGCriteria = "3.1.1" // Language of Page
	Criteria3_3_2 WCAGCriteria = "3.3.2" // Labels or Instructions
	Criteria4_1_1 WCAGCriteria = "4.1.1" // Parsing
	Criteria4_1_2 WCAGCriteria = "4.1.2" // Name, Role, Value
)

// ViolationSeverity represents the severity level of an accessibility violation.
type ViolationSeverity string

const (
	SeverityError   ViolationSeverity = "error"
	SeverityWarning ViolationSeverity = "warning"
)

// ViolationImpact represents the potential impact of an accessibility violation.
type ViolationImpact string

const (
	ImpactCritical ViolationImpact = "critical"
	ImpactSerious  ViolationImpact = "serious"
	ImpactModerate ViolationImpact = "moderate"
)

// Rule ids.
const (
	RuleAltText      = "missing-alt-text"
	RuleFormLabel    = "missing-form-label"
	RuleHeadingOrder = "heading-order"
	RuleSingleH1     = "single-h1"
	RuleButtonName   = "missing-button-text"
	RuleLang         = "missing-lang-attribute"
	RuleTitle        = "missing-title-element"
	RuleDuplicateID  = "duplicate-id"
	RuleSkipLink     = "missing-skip-link"
)

// Rule describes one check.
type Rule struct {
	ID          string            `json:"id" yaml:"id"`
	Description string            `json:"description" yaml:"description"`
	Impact      ViolationImpact   `json:"impact" yaml:"impact"`
	Severity    ViolationSeverity `json:"severity" yaml:"severity"`
	WCAG        WCAGCriteria      `json:"wcag" yaml:"wcag"`
}

// Violation is a single failed check.
type Violation struct {
	Rule     string            `json:"rule" yaml:"rule"`
	Severity ViolationSeverity `json:"severity" yaml:"severity"`
	WCAG     WCAGCriteria      `json:"wcag" yaml:"wcag"`
	Element  string            `json:"element,omitempty" yaml:"element,omitempty"`
	Message  string            `json:"message" yaml:"message"`
}

// Report contains the results of auditing one page.
type Report struct {
	Path       string        `json:"path" yaml:"path"`
	Title      string        `json:"title" yaml:"title"`
	Violations []Violation   `json:"violations" yaml:"violations"`
	Passed     []string      `json:"passed" yaml:"passed"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// HasErrors reports whether any error-severity check failed.
func (r *Report) HasErrors() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Count returns the number of violations with severity s.
func (r *Report) Count(s ViolationSeverity) int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == s {
			n++
		}
	}

	return n
}

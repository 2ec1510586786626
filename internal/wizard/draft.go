package wizard

import "slices"

// Field names a single-value draft field. The string values double as the
// HTML form input names.
type Field string

const (
	FieldName           Field = "name"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldProjectDetails Field = "projectDetails"
	FieldPersonalNote   Field = "personalNote"
	FieldTimeline       Field = "timeline"
	FieldBudget         Field = "budget"
)

// ServicesField is the form input name carrying selected service labels.
const ServicesField = "services"

// Fields returns every single-value field in form order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone, FieldProjectDetails, FieldPersonalNote, FieldTimeline, FieldBudget}
}

// Step returns the step whose panel shows f.
func (f Field) Step() Step {
	switch f {
	case FieldName, FieldEmail, FieldPhone:
		return StepContact
	case FieldProjectDetails:
		return StepProject
	case FieldPersonalNote, FieldTimeline, FieldBudget:
		return StepAdditional
	default:
		return 0
	}
}

// FieldsFor returns the single-value fields rendered on step s.
func FieldsFor(s Step) []Field {
	var out []Field
	for _, f := range Fields() {
		if f.Step() == s {
			out = append(out, f)
		}
	}

	return out
}

// Draft holds the visitor's unsaved answers.
type Draft struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	Services       []string `json:"services"`
	ProjectDetails string   `json:"projectDetails,omitempty"`
	PersonalNote   string   `json:"personalNote,omitempty"`
	Timeline       string   `json:"timeline,omitempty"`
	Budget         string   `json:"budget,omitempty"`
}

// Get returns the value of a single-value field.
func (d *Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldProjectDetails:
		return d.ProjectDetails
	case FieldPersonalNote:
		return d.PersonalNote
	case FieldTimeline:
		return d.Timeline
	case FieldBudget:
		return d.Budget
	default:
		return ""
	}
}

func (d *Draft) set(f Field, v string) bool {
	switch f {
	case FieldName:
		d.Name = v
	case FieldEmail:
		d.Email = v
	case FieldPhone:
		d.Phone = v
	case FieldProjectDetails:
		d.ProjectDetails = v
	case FieldPersonalNote:
		d.PersonalNote = v
	case FieldTimeline:
		d.Timeline = v
	case FieldBudget:
		d.Budget = v
	default:
		return false
	}

	return true
}

// HasService reports whether label is selected.
func (d *Draft) HasService(label string) bool {
	return slices.Contains(d.Services, label)
}

// IsEmpty reports whether nothing has been entered yet.
func (d *Draft) IsEmpty() bool {
	for _, f := range Fields() {
		if d.Get(f) != "" {
			return false
		}
	}

	return len(d.Services) == 0
}

// Clone returns a deep copy.
func (d Draft) Clone() Draft {
	d.Services = slices.Clone(d.Services)

	return d
}

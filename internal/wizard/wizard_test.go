package wizard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		Services:  []string{"Logo", "Brochure", "Banner printing", "UV Printing & Coating"},
		Timelines: []string{"ASAP (Rush)", "1 Week", "Flexible"},
		Budgets:   []string{"Under $500", "$500 - $1,000"},
	}
}

func TestNewWizard(t *testing.T) {
	w := New(testOptions())

	assert.Equal(t, StepContact, w.Step())
	assert.False(t, w.Submitted())
	d := w.Draft()
	assert.True(t, d.IsEmpty())
}

func TestAdvanceRetreatBounds(t *testing.T) {
	w := New(testOptions())

	assert.False(t, w.Retreat(), "back from step 1 is a no-op")
	assert.Equal(t, StepContact, w.Step())

	assert.True(t, w.Advance())
	assert.Equal(t, StepProject, w.Step())
	assert.True(t, w.Advance())
	assert.Equal(t, StepAdditional, w.Step())

	assert.False(t, w.Advance(), "next from step 3 is a no-op")
	assert.Equal(t, StepAdditional, w.Step())

	assert.True(t, w.Retreat())
	assert.Equal(t, StepProject, w.Step())
}

func TestToggleTwiceRestores(t *testing.T) {
	w := New(testOptions())
	_, err := w.Toggle("Brochure")
	require.NoError(t, err)
	before := w.Draft().Services

	selected, err := w.Toggle("Logo")
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = w.Toggle("Logo")
	require.NoError(t, err)
	assert.False(t, selected)

	assert.Equal(t, before, w.Draft().Services)
}

func TestToggleUnknownService(t *testing.T) {
	w := New(testOptions())

	_, err := w.Toggle("Rocket launch")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownService))
	assert.Empty(t, w.Draft().Services)
}

func TestToggleWithoutCatalogue(t *testing.T) {
	w := New(Options{})

	selected, err := w.Toggle("anything")
	require.NoError(t, err)
	assert.True(t, selected)
}

func TestSet(t *testing.T) {
	w := New(testOptions())

	require.NoError(t, w.Set(FieldName, "  Jane Doe "))
	require.NoError(t, w.Set(FieldTimeline, "1 Week"))
	require.NoError(t, w.Set(FieldTimeline, ""))

	d := w.Draft()
	assert.Equal(t, "Jane Doe", d.Name)
	assert.Equal(t, "", d.Timeline)

	err := w.Set(FieldTimeline, "Yesterday")
	assert.True(t, errors.Is(err, ErrInvalidChoice))

	err = w.Set(FieldBudget, "A million")
	assert.True(t, errors.Is(err, ErrInvalidChoice))

	err = w.Set(Field("serviceType"), "x")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestSubmitOnlyFromLastStep(t *testing.T) {
	w := New(testOptions())

	_, err := w.Submit()
	assert.True(t, errors.Is(err, ErrNotFinalStep))
	assert.False(t, w.Submitted())

	w.Advance()
	w.Advance()

	_, err = w.Submit()
	require.NoError(t, err)
	assert.True(t, w.Submitted())

	_, err = w.Submit()
	assert.True(t, errors.Is(err, ErrSubmitted))
}

func TestSubmittedIsTerminal(t *testing.T) {
	w := New(testOptions())
	w.Advance()
	w.Advance()
	_, err := w.Submit()
	require.NoError(t, err)

	assert.False(t, w.Advance())
	assert.False(t, w.Retreat())
	assert.Equal(t, StepAdditional, w.Step())

	_, err = w.Toggle("Logo")
	assert.True(t, errors.Is(err, ErrSubmitted))
	assert.True(t, errors.Is(w.Set(FieldName, "x"), ErrSubmitted))
	assert.True(t, errors.Is(w.ReplaceServices(nil), ErrSubmitted))
}

func TestResetAfterSubmit(t *testing.T) {
	w := New(testOptions())
	require.NoError(t, w.Set(FieldName, "Jane Doe"))
	require.NoError(t, w.Set(FieldEmail, "jane@x.com"))
	w.Advance()
	_, _ = w.Toggle("Logo")
	w.Advance()
	_, err := w.Submit()
	require.NoError(t, err)

	w.Reset()

	assert.Equal(t, StepContact, w.Step())
	assert.False(t, w.Submitted())
	if diff := cmp.Diff(Draft{}, w.Draft()); diff != "" {
		t.Errorf("draft not empty after reset (-want +got):\n%s", diff)
	}
}

func TestQuoteScenario(t *testing.T) {
	w := New(testOptions())

	require.NoError(t, w.Set(FieldName, "Jane Doe"))
	require.NoError(t, w.Set(FieldEmail, "jane@x.com"))
	require.True(t, w.Advance())

	_, err := w.Toggle("Logo")
	require.NoError(t, err)
	_, err = w.Toggle("Brochure")
	require.NoError(t, err)
	require.True(t, w.Advance())

	submitted, err := w.Submit()
	require.NoError(t, err)

	assert.True(t, w.Submitted())
	assert.ElementsMatch(t, []string{"Logo", "Brochure"}, submitted.Services)
	assert.ElementsMatch(t, []string{"Logo", "Brochure"}, w.Draft().Services)
	assert.Equal(t, "Jane Doe", submitted.Name)
	assert.Equal(t, "jane@x.com", submitted.Email)
}

func TestReplaceServices(t *testing.T) {
	w := New(testOptions())
	_, _ = w.Toggle("Logo")
	_, _ = w.Toggle("Brochure")

	require.NoError(t, w.ReplaceServices([]string{"Brochure", "Banner printing", "Brochure"}))
	assert.Equal(t, []string{"Brochure", "Banner printing"}, w.Draft().Services)

	err := w.ReplaceServices([]string{"Logo", "Nope"})
	assert.True(t, errors.Is(err, ErrUnknownService))
	assert.Equal(t, []string{"Brochure", "Banner printing"}, w.Draft().Services, "rejected replace leaves selection untouched")

	require.NoError(t, w.ReplaceServices(nil))
	assert.Empty(t, w.Draft().Services)
}

func TestDraftIsCopied(t *testing.T) {
	w := New(testOptions())
	_, _ = w.Toggle("Logo")

	d := w.Draft()
	d.Services[0] = "mutated"

	assert.Equal(t, []string{"Logo"}, w.Draft().Services)
}

func TestErrorContextDoesNotLeak(t *testing.T) {
	w := New(testOptions())
	_ = w.Set(FieldTimeline, "never")

	assert.Nil(t, ErrInvalidChoice.Context)
}

func TestStepLabels(t *testing.T) {
	assert.Equal(t, "Contact Information", StepContact.Title())
	assert.Equal(t, "Next: Project Details", StepContact.NextLabel())
	assert.Equal(t, "Next: Additional Information", StepProject.NextLabel())
	assert.Equal(t, "Submit Quote Request", StepAdditional.NextLabel())
	assert.False(t, Step(4).Valid())
	assert.Equal(t, "Step(0)", Step(0).String())
}

func TestFieldsFor(t *testing.T) {
	assert.Equal(t, []Field{FieldName, FieldEmail, FieldPhone}, FieldsFor(StepContact))
	assert.Equal(t, []Field{FieldProjectDetails}, FieldsFor(StepProject))
	assert.Equal(t, []Field{FieldPersonalNote, FieldTimeline, FieldBudget}, FieldsFor(StepAdditional))
}

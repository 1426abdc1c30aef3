package widgets

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/accessor"
	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/prompt"
)

func travelSpec() model.FieldSpec {
	return model.FieldSpec{
		Name:   "travel_window",
		Kind:   model.FieldKindString,
		Format: "date-range",
		Label:  "Travel Window",
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(accessor.DateLayout, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func newRangeField(t *testing.T, control *forms.Control[*accessor.DateRange], driver *stubDriver) *DateRangeField {
	t.Helper()
	field, err := NewDateRange(DateRangeConfig{
		Spec:    travelSpec(),
		Control: control,
		First:   mustDate(t, "2024-01-01"),
		Last:    mustDate(t, "2024-12-31"),
		Driver:  driver,
	})
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}
	return field
}

func TestDateRangeWindowValidation(t *testing.T) {
	base := DateRangeConfig{
		Spec:    travelSpec(),
		Control: forms.NewControl[*accessor.DateRange](nil),
		Driver:  &stubDriver{},
	}

	missing := base
	if _, err := NewDateRange(missing); err == nil {
		t.Fatal("expected an error when the selectable window is missing")
	}

	inverted := base
	inverted.First = mustDate(t, "2024-12-31")
	inverted.Last = mustDate(t, "2024-01-01")
	if _, err := NewDateRange(inverted); err == nil {
		t.Fatal("expected an error for an inverted selectable window")
	}
}

func TestDateRangeBoundsHoldForProgrammaticValues(t *testing.T) {
	control := forms.NewControl[*accessor.DateRange](nil)
	newRangeField(t, control, &stubDriver{})

	control.SetValue(&accessor.DateRange{
		Start: mustDate(t, "2030-01-01"),
		End:   mustDate(t, "2030-01-05"),
	})
	if control.Valid() {
		t.Fatal("expected an out-of-window range to fail validation")
	}
	if _, ok := control.Errors()[forms.ErrorKindRange]; !ok {
		t.Fatalf("expected a range error, got %v", control.Errors())
	}

	control.SetValue(&accessor.DateRange{
		Start: mustDate(t, "2024-06-01"),
		End:   mustDate(t, "2024-06-10"),
	})
	if !control.Valid() {
		t.Fatalf("in-window range rejected: %v", control.Errors())
	}
}

func TestDateRangeCompletePairMutatesOnce(t *testing.T) {
	control := forms.NewControl[*accessor.DateRange](nil)
	driver := &stubDriver{inputs: []string{"2024-03-01", "2024-03-10"}}
	field := newRangeField(t, control, driver)

	notifications := 0
	control.Subscribe(func(*accessor.DateRange) { notifications++ })

	outcome, err := field.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if outcome.IsCancelled() {
		t.Fatal("expected a confirmed outcome")
	}

	want := &accessor.DateRange{
		Start: mustDate(t, "2024-03-01"),
		End:   mustDate(t, "2024-03-10"),
	}
	if diff := cmp.Diff(want, control.Value()); diff != "" {
		t.Fatalf("range mismatch (-want +got):\n%s", diff)
	}
	if notifications != 1 {
		t.Fatalf("expected exactly one change notification, got %d", notifications)
	}
	if !control.Touched() {
		t.Fatal("expected the control to be touched after confirm")
	}
}

func TestDateRangeIncompletePairIsNoOp(t *testing.T) {
	initial := &accessor.DateRange{
		Start: mustDate(t, "2024-02-01"),
		End:   mustDate(t, "2024-02-14"),
	}
	control := forms.NewControl(initial)
	driver := &stubDriver{inputs: []string{"2024-03-01", ""}}
	field := newRangeField(t, control, driver)

	notifications := 0
	control.Subscribe(func(*accessor.DateRange) { notifications++ })

	outcome, err := field.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !outcome.IsCancelled() {
		t.Fatal("expected an incomplete pair to cancel the interaction")
	}
	if diff := cmp.Diff(initial, control.Value()); diff != "" {
		t.Fatalf("incomplete pair must not mutate the value (-want +got):\n%s", diff)
	}
	if control.Touched() || notifications != 0 {
		t.Fatalf("incomplete pair must be a no-op, got touched=%v notifications=%d",
			control.Touched(), notifications)
	}
	if len(driver.infoLines) != 1 {
		t.Fatalf("expected one feedback line, got %v", driver.infoLines)
	}
}

func TestDateRangeInvertedPairIsNoOp(t *testing.T) {
	control := forms.NewControl[*accessor.DateRange](nil)
	driver := &stubDriver{inputs: []string{"2024-03-10", "2024-03-01"}}
	field := newRangeField(t, control, driver)

	outcome, err := field.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !outcome.IsCancelled() {
		t.Fatal("expected an inverted pair to cancel the interaction")
	}
	if control.Value() != nil || control.Touched() {
		t.Fatal("inverted pair must leave the control alone")
	}
}

func TestDateRangeBlankPairClearsSelection(t *testing.T) {
	control := forms.NewControl(&accessor.DateRange{
		Start: mustDate(t, "2024-02-01"),
		End:   mustDate(t, "2024-02-14"),
	})
	driver := &stubDriver{inputs: []string{"", ""}}
	field := newRangeField(t, control, driver)

	outcome, err := field.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if outcome.IsCancelled() {
		t.Fatal("expected a blank pair to confirm an empty selection")
	}
	if control.Value() != nil {
		t.Fatalf("expected the selection cleared, got %+v", control.Value())
	}
}

func TestDateRangeAbortAtEitherPrompt(t *testing.T) {
	for name, driver := range map[string]*stubDriver{
		"start": {inputErrs: []error{prompt.ErrAborted}},
		"end":   {inputs: []string{"2024-03-01"}, inputErrs: []error{nil, prompt.ErrAborted}},
	} {
		t.Run(name, func(t *testing.T) {
			control := forms.NewControl[*accessor.DateRange](nil)
			field := newRangeField(t, control, driver)

			outcome, err := field.Open(context.Background())
			if err != nil {
				t.Fatalf("Open after abort: %v", err)
			}
			if !outcome.IsCancelled() {
				t.Fatal("expected a cancelled outcome")
			}
			if control.Value() != nil || control.Touched() {
				t.Fatal("aborting must leave the control alone")
			}
		})
	}
}

func TestDateRangePromptSurface(t *testing.T) {
	control := forms.NewControl(&accessor.DateRange{
		Start: mustDate(t, "2024-02-01"),
		End:   mustDate(t, "2024-02-14"),
	})
	driver := &stubDriver{inputs: []string{"2024-02-01", "2024-02-14"}}
	field := newRangeField(t, control, driver)

	if _, err := field.Open(context.Background()); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if len(driver.inputCfgs) != 2 {
		t.Fatalf("expected two prompts, got %d", len(driver.inputCfgs))
	}
	if driver.inputCfgs[0].Default != "2024-02-01" || driver.inputCfgs[1].Default != "2024-02-14" {
		t.Fatalf("expected current bounds as defaults, got %q and %q",
			driver.inputCfgs[0].Default, driver.inputCfgs[1].Default)
	}

	validate := driver.inputCfgs[0].Validator
	if validate == nil {
		t.Fatal("expected a bound validator on the prompt")
	}
	if err := validate(""); err != nil {
		t.Fatalf("blank input must be accepted: %v", err)
	}
	if err := validate("2024-06-15"); err != nil {
		t.Fatalf("in-window date must be accepted: %v", err)
	}
	if err := validate("not-a-date"); err == nil {
		t.Fatal("malformed input must be rejected")
	}
	if err := validate("2030-01-01"); err == nil {
		t.Fatal("out-of-window date must be rejected")
	}
}

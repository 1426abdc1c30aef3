package widgets

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/binding"
	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/prompt"
)

func colorSpec() model.FieldSpec {
	return model.FieldSpec{
		Name:     "colors",
		Kind:     model.FieldKindArray,
		Label:    "Colors",
		Required: true,
		Options: []model.Option{
			{Value: "a", Label: "Alpha"},
			{Value: "b", Label: "Beta"},
			{Value: "c", Label: "Gamma"},
		},
	}
}

func TestMultiSelectConfirmMutatesOnce(t *testing.T) {
	control := forms.NewControl([]string{"b"})
	driver := &stubDriver{multi: [][]string{{"Alpha", "Gamma"}}}

	field, err := NewMultiSelect(MultiSelectConfig{
		Spec:    colorSpec(),
		Control: control,
		Driver:  driver,
	})
	if err != nil {
		t.Fatalf("NewMultiSelect: %v", err)
	}

	notifications := 0
	unsubscribe := control.Subscribe(func([]string) { notifications++ })
	defer unsubscribe()

	outcome, err := field.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if outcome.IsCancelled() {
		t.Fatal("expected a confirmed outcome")
	}

	if diff := cmp.Diff([]string{"a", "c"}, control.Value()); diff != "" {
		t.Fatalf("control value mismatch (-want +got):\n%s", diff)
	}
	if notifications != 1 {
		t.Fatalf("expected exactly one change notification, got %d", notifications)
	}
	if !control.Touched() || !control.Dirty() {
		t.Fatalf("expected touched and dirty after confirm, got touched=%v dirty=%v",
			control.Touched(), control.Dirty())
	}
}

func TestMultiSelectPromptSurface(t *testing.T) {
	control := forms.NewControl([]string{"b"})
	driver := &stubDriver{multi: [][]string{{"Beta"}}}

	field, err := NewMultiSelect(MultiSelectConfig{
		Spec:     colorSpec(),
		Control:  control,
		Driver:   driver,
		PageSize: 7,
	})
	if err != nil {
		t.Fatalf("NewMultiSelect: %v", err)
	}

	if _, err := field.Open(context.Background()); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if len(driver.multiCfgs) != 1 {
		t.Fatalf("expected one dialog, got %d", len(driver.multiCfgs))
	}
	cfg := driver.multiCfgs[0]
	if diff := cmp.Diff([]string{"Alpha", "Beta", "Gamma"}, cfg.Options); diff != "" {
		t.Fatalf("option labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Beta"}, cfg.Defaults); diff != "" {
		t.Fatalf("expected current selection preselected (-want +got):\n%s", diff)
	}
	if cfg.Message != "Colors *" {
		t.Fatalf("unexpected prompt message %q", cfg.Message)
	}
	if cfg.PageSize != 7 {
		t.Fatalf("unexpected page size %d", cfg.PageSize)
	}
}

func TestMultiSelectAbortLeavesControlUntouched(t *testing.T) {
	control := forms.NewControl([]string{"b"})
	driver := &stubDriver{multiErrs: []error{prompt.ErrAborted}}

	field, err := NewMultiSelect(MultiSelectConfig{
		Spec:    colorSpec(),
		Control: control,
		Driver:  driver,
	})
	if err != nil {
		t.Fatalf("NewMultiSelect: %v", err)
	}

	notifications := 0
	control.Subscribe(func([]string) { notifications++ })

	outcome, err := field.Open(context.Background())
	if err != nil {
		t.Fatalf("Open after abort: %v", err)
	}
	if !outcome.IsCancelled() {
		t.Fatal("expected a cancelled outcome")
	}
	if diff := cmp.Diff([]string{"b"}, control.Value()); diff != "" {
		t.Fatalf("aborting must not mutate the value (-want +got):\n%s", diff)
	}
	if control.Touched() || control.Dirty() || notifications != 0 {
		t.Fatalf("aborting must be a no-op, got touched=%v dirty=%v notifications=%d",
			control.Touched(), control.Dirty(), notifications)
	}
}

func TestMultiSelectDisabledControl(t *testing.T) {
	control := forms.NewControl([]string{}, forms.WithDisabled[[]string]())
	field, err := NewMultiSelect(MultiSelectConfig{
		Spec:    colorSpec(),
		Control: control,
		Driver:  &stubDriver{},
	})
	if err != nil {
		t.Fatalf("NewMultiSelect: %v", err)
	}

	if _, err := field.Open(context.Background()); err == nil {
		t.Fatal("expected an error opening a disabled field")
	}
}

func TestMultiSelectReportsValidationFeedback(t *testing.T) {
	control := forms.NewControl([]string{},
		forms.WithValidators(forms.MinItems[string](2)))
	driver := &stubDriver{multi: [][]string{{"Alpha"}}}

	field, err := NewMultiSelect(MultiSelectConfig{
		Spec:    colorSpec(),
		Control: control,
		Driver:  driver,
	})
	if err != nil {
		t.Fatalf("NewMultiSelect: %v", err)
	}

	if _, err := field.Open(context.Background()); err != nil {
		t.Fatalf("Open: %v", err)
	}

	want := []string{"! Select at least 2 items"}
	if diff := cmp.Diff(want, driver.infoLines); diff != "" {
		t.Fatalf("validation feedback mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiSelectNamedControlLookup(t *testing.T) {
	group := forms.NewGroup()
	group.MustAdd("colors", forms.NewControl([]string{"a"}))

	driver := &stubDriver{multi: [][]string{{"Gamma"}}}
	field, err := NewMultiSelect(MultiSelectConfig{
		Spec:        colorSpec(),
		Group:       group,
		ControlName: "colors",
		Driver:      driver,
	})
	if err != nil {
		t.Fatalf("NewMultiSelect: %v", err)
	}

	if _, err := field.Open(context.Background()); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if diff := cmp.Diff([]string{"c"}, field.Control().Value()); diff != "" {
		t.Fatalf("named control value mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiSelectConfigErrors(t *testing.T) {
	spec := colorSpec()

	if _, err := NewMultiSelect(MultiSelectConfig{Spec: spec, Control: forms.NewControl([]string{})}); err == nil {
		t.Fatal("expected an error when the driver is missing")
	}

	group := forms.NewGroup()
	group.MustAdd("colors", forms.NewControl([]string{}))

	_, err := NewMultiSelect(MultiSelectConfig{
		Spec:        spec,
		Control:     forms.NewControl([]string{}),
		Group:       group,
		ControlName: "colors",
		Driver:      &stubDriver{},
	})
	var cfgErr *binding.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a configuration error for ambiguous control wiring, got %v", err)
	}
}

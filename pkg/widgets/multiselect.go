package widgets

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formbind/pkg/accessor"
	"github.com/goliatone/go-formbind/pkg/binding"
	"github.com/goliatone/go-formbind/pkg/decoration"
	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/prompt"
)

// MultiSelectConfig is the declarative configuration of a multi-select
// dialog field: the wrapped prompt's surface (options, help, page size) plus
// the form-binding parameters. Exactly one of Control/ControlName must be
// set.
type MultiSelectConfig struct {
	Spec model.FieldSpec

	Control     *forms.Control[[]string]
	Group       *forms.Group
	ControlName string

	Messages   binding.Messages
	ShowErrors binding.ShowErrorsPredicate

	Driver     prompt.Driver
	Decoration decoration.Defaults
	PageSize   int
}

// MultiSelectField adapts the multi-select dialog to a bound form control.
// One Open call is one interaction: a confirmed dialog produces exactly one
// control mutation, a dismissed dialog produces none.
type MultiSelectField struct {
	spec     model.FieldSpec
	binding  *binding.Binding[[]string, []string]
	driver   prompt.Driver
	deco     decoration.Defaults
	pageSize int
}

// NewMultiSelect constructs the field. The value accessor is derived from
// the field options (stored values bind, labels display); binding
// configuration errors surface unchanged.
func NewMultiSelect(cfg MultiSelectConfig) (*MultiSelectField, error) {
	if cfg.Driver == nil {
		return nil, fmt.Errorf("widgets: prompt driver is required")
	}

	acc, err := accessor.NewMultiSelect(cfg.Spec.Options)
	if err != nil {
		return nil, err
	}

	opts := []binding.Option[[]string, []string]{
		binding.WithAccessor[[]string, []string](acc),
	}
	if cfg.Control != nil {
		opts = append(opts, binding.WithControl[[]string, []string](cfg.Control))
	}
	if cfg.ControlName != "" || cfg.Group != nil {
		opts = append(opts, binding.WithControlName[[]string, []string](cfg.Group, cfg.ControlName))
	}
	if cfg.Messages != nil {
		opts = append(opts, binding.WithMessages[[]string, []string](cfg.Messages))
	}
	if cfg.ShowErrors != nil {
		opts = append(opts, binding.WithShowErrors[[]string, []string](cfg.ShowErrors))
	}

	bnd, err := binding.New(opts...)
	if err != nil {
		return nil, err
	}

	return &MultiSelectField{
		spec:     cfg.Spec,
		binding:  bnd,
		driver:   cfg.Driver,
		deco:     decoration.Base().Merge(cfg.Decoration),
		pageSize: cfg.PageSize,
	}, nil
}

// State derives the current render state of the field.
func (f *MultiSelectField) State() binding.State[[]string] {
	return f.binding.State()
}

// Control exposes the bound control.
func (f *MultiSelectField) Control() *forms.Control[[]string] {
	return f.binding.Control()
}

// Open runs one dialog interaction. A dismissed dialog resolves to a
// cancelled outcome with the control untouched; a confirmed selection is
// pushed through the binding as a single mutation. Validation feedback that
// becomes visible after the interaction is printed through the driver.
func (f *MultiSelectField) Open(ctx context.Context) (binding.Outcome[[]string], error) {
	cancelled := binding.Cancelled[[]string]()

	state := f.binding.State()
	if !state.Enabled {
		return cancelled, fmt.Errorf("widgets: field %q is disabled", f.spec.Name)
	}

	labels, err := f.driver.MultiSelect(ctx, prompt.MultiSelectConfig{
		Message:  f.deco.Label(f.spec.DisplayLabel(), f.spec.Required),
		Options:  f.spec.OptionLabels(),
		Defaults: state.ViewValue,
		Help:     decoration.SanitizeHelp(f.spec.Help),
		PageSize: f.pageSize,
	})
	if errors.Is(err, prompt.ErrAborted) {
		f.binding.Cancel()
		return cancelled, nil
	}
	if err != nil {
		return cancelled, err
	}

	outcome := binding.Confirmed(labels)
	if err := f.binding.Resolve(outcome); err != nil {
		return cancelled, err
	}

	f.reportErrors(ctx)
	return outcome, nil
}

func (f *MultiSelectField) reportErrors(ctx context.Context) {
	if text := f.binding.State().ErrorText; text != "" {
		_ = f.driver.Info(ctx, f.deco.ErrorLine(text))
	}
}

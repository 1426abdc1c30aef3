package widgets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-formbind/pkg/accessor"
	"github.com/goliatone/go-formbind/pkg/binding"
	"github.com/goliatone/go-formbind/pkg/decoration"
	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/prompt"
)

// DateRangeConfig is the declarative configuration of a date-range picker
// field. First and Last bound the selectable window and are required
// configuration; there is no default far-future sentinel. Exactly one of
// Control/ControlName must be set.
type DateRangeConfig struct {
	Spec model.FieldSpec

	Control     *forms.Control[*accessor.DateRange]
	Group       *forms.Group
	ControlName string

	First  time.Time
	Last   time.Time
	Layout string

	Messages   binding.Messages
	ShowErrors binding.ShowErrorsPredicate

	Driver     prompt.Driver
	Decoration decoration.Defaults
}

// DateRangeField adapts a start/end date picker to a bound form control
// holding a *accessor.DateRange. The picker asks for both bounds in one
// interaction; only a complete pair mutates the control.
type DateRangeField struct {
	spec    model.FieldSpec
	binding *binding.Binding[*accessor.DateRange, accessor.RangeView]
	driver  prompt.Driver
	deco    decoration.Defaults
	first   time.Time
	last    time.Time
	layout  string
}

// NewDateRange constructs the field, validating the selectable window.
func NewDateRange(cfg DateRangeConfig) (*DateRangeField, error) {
	if cfg.Driver == nil {
		return nil, fmt.Errorf("widgets: prompt driver is required")
	}
	if cfg.First.IsZero() || cfg.Last.IsZero() {
		return nil, fmt.Errorf("widgets: first and last selectable dates are required")
	}
	if cfg.Last.Before(cfg.First) {
		return nil, fmt.Errorf("widgets: last selectable date precedes first")
	}

	layout := cfg.Layout
	if layout == "" {
		layout = accessor.DateLayout
	}
	acc := accessor.NewDateRange(accessor.WithLayout(layout))

	opts := []binding.Option[*accessor.DateRange, accessor.RangeView]{
		binding.WithAccessor[*accessor.DateRange, accessor.RangeView](acc),
	}
	if cfg.Control != nil {
		opts = append(opts, binding.WithControl[*accessor.DateRange, accessor.RangeView](cfg.Control))
	}
	if cfg.ControlName != "" || cfg.Group != nil {
		opts = append(opts, binding.WithControlName[*accessor.DateRange, accessor.RangeView](cfg.Group, cfg.ControlName))
	}
	if cfg.Messages != nil {
		opts = append(opts, binding.WithMessages[*accessor.DateRange, accessor.RangeView](cfg.Messages))
	}
	if cfg.ShowErrors != nil {
		opts = append(opts, binding.WithShowErrors[*accessor.DateRange, accessor.RangeView](cfg.ShowErrors))
	}

	bnd, err := binding.New(opts...)
	if err != nil {
		return nil, err
	}
	// Bounds hold for programmatic SetValue too, not just prompt input.
	bnd.Control().AddValidators(accessor.WithinBounds(cfg.First, cfg.Last))

	return &DateRangeField{
		spec:    cfg.Spec,
		binding: bnd,
		driver:  cfg.Driver,
		deco:    decoration.Base().Merge(cfg.Decoration),
		first:   cfg.First,
		last:    cfg.Last,
		layout:  layout,
	}, nil
}

// State derives the current render state of the field.
func (f *DateRangeField) State() binding.State[accessor.RangeView] {
	return f.binding.State()
}

// Control exposes the bound control.
func (f *DateRangeField) Control() *forms.Control[*accessor.DateRange] {
	return f.binding.Control()
}

// Open runs one range-picking interaction: start bound, then end bound.
// Aborting either prompt cancels the whole interaction. Leaving both blank
// confirms "no selection"; leaving exactly one blank is an incomplete
// interaction and mutates nothing. A complete pair is pushed through the
// binding as a single mutation.
func (f *DateRangeField) Open(ctx context.Context) (binding.Outcome[accessor.RangeView], error) {
	cancelled := binding.Cancelled[accessor.RangeView]()

	state := f.binding.State()
	if !state.Enabled {
		return cancelled, fmt.Errorf("widgets: field %q is disabled", f.spec.Name)
	}

	label := f.spec.DisplayLabel()
	help := decoration.SanitizeHelp(f.spec.Help)

	start, err := f.driver.Input(ctx, prompt.InputConfig{
		Message:     f.deco.Label(label+" (start)", f.spec.Required),
		Default:     state.ViewValue.Start,
		Help:        help,
		Placeholder: f.placeholder(),
		Validator:   f.validateBound,
	})
	if errors.Is(err, prompt.ErrAborted) {
		f.binding.Cancel()
		return cancelled, nil
	}
	if err != nil {
		return cancelled, err
	}

	end, err := f.driver.Input(ctx, prompt.InputConfig{
		Message:     f.deco.Label(label+" (end)", f.spec.Required),
		Default:     state.ViewValue.End,
		Help:        help,
		Placeholder: f.placeholder(),
		Validator:   f.validateBound,
	})
	if errors.Is(err, prompt.ErrAborted) {
		f.binding.Cancel()
		return cancelled, nil
	}
	if err != nil {
		return cancelled, err
	}

	view := accessor.RangeView{
		Start: strings.TrimSpace(start),
		End:   strings.TrimSpace(end),
	}

	outcome := binding.Confirmed(view)
	if err := f.binding.Resolve(outcome); err != nil {
		// Incomplete or inverted pair: report and leave the control alone.
		_ = f.driver.Info(ctx, f.deco.ErrorLine(rejectText(err)))
		return cancelled, nil
	}

	f.reportErrors(ctx)
	return outcome, nil
}

func (f *DateRangeField) placeholder() string {
	if f.spec.Placeholder != "" {
		return f.spec.Placeholder
	}
	return time.Now().Format(f.layout)
}

// validateBound accepts blank input (optional bound) and otherwise requires
// a parsable date inside the selectable window.
func (f *DateRangeField) validateBound(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	parsed, err := time.Parse(f.layout, trimmed)
	if err != nil {
		return fmt.Errorf("expected a %s date", f.layout)
	}
	if parsed.Before(f.first) || parsed.After(f.last) {
		return fmt.Errorf("must fall between %s and %s",
			f.first.Format(f.layout), f.last.Format(f.layout))
	}
	return nil
}

func (f *DateRangeField) reportErrors(ctx context.Context) {
	if text := f.binding.State().ErrorText; text != "" {
		_ = f.driver.Info(ctx, f.deco.ErrorLine(text))
	}
}

func rejectText(err error) string {
	switch {
	case errors.Is(err, accessor.ErrIncompleteRange):
		return "both start and end are needed to select a range"
	case errors.Is(err, accessor.ErrInvertedRange):
		return "the end date precedes the start date"
	default:
		return err.Error()
	}
}

package binding

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formbind/pkg/accessor"
	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/messages"
)

// Binding mediates between one form control and one presentation widget:
// model values flow out through the accessor for display, confirmed view
// values flow back in as exactly one control mutation. The widget never sees
// the form abstraction and the control never sees the view type.
type Binding[M, V any] struct {
	control    *forms.Control[M]
	accessor   accessor.ValueAccessor[M, V]
	messages   Messages
	onMissing  messages.MissingMessageHandler
	showErrors ShowErrorsPredicate
}

// State is what a widget needs to draw itself for the bound control at one
// instant. It is derived, never stored: compute it again after every state
// change.
type State[V any] struct {
	ViewValue V
	ErrorText string
	Enabled   bool
}

// New constructs a binding. Exactly one of WithControl/WithControlName must
// be supplied, plus an accessor; violations fail with *ConfigurationError.
func New[M, V any](options ...Option[M, V]) (*Binding[M, V], error) {
	cfg := config[M, V]{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	control, err := resolveControl(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.accessor == nil {
		return nil, configErr("value accessor is required")
	}

	b := &Binding[M, V]{
		control:    control,
		accessor:   cfg.accessor,
		messages:   cfg.messages,
		onMissing:  cfg.onMissing,
		showErrors: cfg.showErrors,
	}
	if b.messages == nil {
		b.messages = messages.Default()
	}
	if b.onMissing == nil {
		b.onMissing = messages.MissingMessageDefault
	}
	if b.showErrors == nil {
		b.showErrors = ShowWhenInvalidTouched
	}
	return b, nil
}

// NewIdentity constructs a binding whose view type equals the model type,
// defaulting the accessor to the identity mapping.
func NewIdentity[M any](options ...Option[M, M]) (*Binding[M, M], error) {
	cfg := config[M, M]{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.accessor == nil {
		options = append(options, WithAccessor[M, M](accessor.Identity[M]()))
	}
	return New(options...)
}

func resolveControl[M, V any](cfg config[M, V]) (*forms.Control[M], error) {
	switch {
	case cfg.control != nil && cfg.named:
		return nil, configErr("formControl and formControlName are mutually exclusive")
	case cfg.control != nil:
		return cfg.control, nil
	case cfg.named:
		control, err := forms.Named[M](cfg.group, cfg.controlName)
		if err != nil {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("resolve control %q", cfg.controlName),
				Err:    err,
			}
		}
		return control, nil
	default:
		return nil, configErr("either formControl or formControlName is required")
	}
}

// Control exposes the bound control.
func (b *Binding[M, V]) Control() *forms.Control[M] {
	return b.control
}

// State derives the current render state from the control: view value via
// the accessor, error text via the visibility predicate and message mapping,
// enabled flag as-is.
func (b *Binding[M, V]) State() State[V] {
	return State[V]{
		ViewValue: b.accessor.ModelToView(b.control.Value()),
		ErrorText: b.errorText(),
		Enabled:   b.control.Enabled(),
	}
}

// Confirm applies one completed user interaction: the view value is mapped
// back to a model value, the control is marked touched, and the new value is
// set, producing exactly one change notification. When the accessor cannot
// map the view value the control is left untouched and the error is returned
// for the widget to surface.
func (b *Binding[M, V]) Confirm(view V) error {
	if !b.control.Enabled() {
		return fmt.Errorf("binding: control is disabled")
	}

	value, err := b.accessor.ViewToModel(view)
	if err != nil {
		return fmt.Errorf("binding: map view value: %w", err)
	}

	b.control.MarkAsTouched()
	b.control.SetValue(value)
	return nil
}

// Cancel records a dismissed interaction. It deliberately mutates nothing:
// a cancelled dialog is a no-op, not an error.
func (b *Binding[M, V]) Cancel() {}

// Resolve applies a one-shot interaction outcome: confirmed outcomes go
// through Confirm, cancelled ones through Cancel.
func (b *Binding[M, V]) Resolve(outcome Outcome[V]) error {
	view, ok := outcome.Value()
	if !ok {
		b.Cancel()
		return nil
	}
	return b.Confirm(view)
}

func (b *Binding[M, V]) errorText() string {
	if !b.showErrors(b.control) {
		return ""
	}
	errs := b.control.Errors()
	if len(errs) == 0 {
		return ""
	}

	kinds := make([]string, 0, len(errs))
	for kind := range errs {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		if text, ok := b.messages.Resolve(kind, errs[kind].Params); ok {
			return text
		}
	}
	// No mapping matched; the missing-message handler decides what shows.
	return b.onMissing(kinds[0], errs[kinds[0]].Params)
}

package binding

import (
	"github.com/goliatone/go-formbind/pkg/accessor"
	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/messages"
)

// Messages resolves an error kind plus validator parameters into display
// text. *messages.Catalog satisfies it; so does any custom translator.
type Messages = messages.Translator

// ShowErrorsPredicate decides when a control's accumulated validation errors
// become visible to the user.
type ShowErrorsPredicate func(forms.ControlRef) bool

// ShowWhenInvalidTouched is the default visibility policy: errors surface
// once the control is invalid and the user has interacted with it.
func ShowWhenInvalidTouched(ref forms.ControlRef) bool {
	return ref != nil && !ref.Valid() && ref.Touched()
}

// Option configures a Binding before construction.
type Option[M, V any] func(*config[M, V])

type config[M, V any] struct {
	control     *forms.Control[M]
	group       *forms.Group
	controlName string
	named       bool
	accessor    accessor.ValueAccessor[M, V]
	messages    Messages
	onMissing   messages.MissingMessageHandler
	showErrors  ShowErrorsPredicate
}

// WithControl binds directly to an existing control. Mutually exclusive with
// WithControlName.
func WithControl[M, V any](control *forms.Control[M]) Option[M, V] {
	return func(cfg *config[M, V]) {
		cfg.control = control
	}
}

// WithControlName binds to the control registered under name in the group.
// Mutually exclusive with WithControl.
func WithControlName[M, V any](group *forms.Group, name string) Option[M, V] {
	return func(cfg *config[M, V]) {
		cfg.group = group
		cfg.controlName = name
		cfg.named = true
	}
}

// WithAccessor supplies the model/view mapping. Required for New; Identity
// is implied only by NewIdentity.
func WithAccessor[M, V any](acc accessor.ValueAccessor[M, V]) Option[M, V] {
	return func(cfg *config[M, V]) {
		cfg.accessor = acc
	}
}

// WithMessages overrides the error-kind → display-message mapping. When
// omitted the bundled default catalog is used.
func WithMessages[M, V any](m Messages) Option[M, V] {
	return func(cfg *config[M, V]) {
		cfg.messages = m
	}
}

// WithMissingMessage overrides what is displayed for an error kind the
// message mapping does not cover. The default echoes the kind.
func WithMissingMessage[M, V any](handler messages.MissingMessageHandler) Option[M, V] {
	return func(cfg *config[M, V]) {
		cfg.onMissing = handler
	}
}

// WithShowErrors overrides the error visibility policy.
func WithShowErrors[M, V any](predicate ShowErrorsPredicate) Option[M, V] {
	return func(cfg *config[M, V]) {
		cfg.showErrors = predicate
	}
}

// Package formbind binds form controls to interactive field widgets: typed
// controls hold model values, value accessors translate between model and
// view representations, and field widgets drive one-interaction dialogs whose
// confirmed outcome is exactly one control mutation.
package formbind

import (
	"github.com/goliatone/go-formbind/pkg/accessor"
	"github.com/goliatone/go-formbind/pkg/binding"
	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/prompt"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// FieldSpec describes one form field; alias exported via the root package
// for convenience.
type FieldSpec = model.FieldSpec

// Option is a selectable value/label pair presented by choice widgets.
type Option = model.Option

// Group is a named collection of controls sharing aggregate validity.
type Group = forms.Group

// DateRange is the model value held by date-range controls.
type DateRange = accessor.DateRange

// MultiSelectConfig configures a multi-select dialog field.
type MultiSelectConfig = widgets.MultiSelectConfig

// DateRangeConfig configures a date-range picker field.
type DateRangeConfig = widgets.DateRangeConfig

// ConfigurationError is the construction-time failure for unusable binding
// arguments.
type ConfigurationError = binding.ConfigurationError

// ErrAborted is the sentinel a prompt driver returns when the user dismisses
// a dialog.
var ErrAborted = prompt.ErrAborted

// NewControl exposes the typed control constructor from the top-level
// module.
func NewControl[M any](initial M, options ...forms.ControlOption[M]) *forms.Control[M] {
	return forms.NewControl(initial, options...)
}

// NewGroup constructs an empty control group.
func NewGroup() *forms.Group {
	return forms.NewGroup()
}

// NewMultiSelect constructs a multi-select dialog field bound to a string
// slice control.
func NewMultiSelect(cfg MultiSelectConfig) (*widgets.MultiSelectField, error) {
	return widgets.NewMultiSelect(cfg)
}

// NewDateRange constructs a date-range picker field bound to a *DateRange
// control.
func NewDateRange(cfg DateRangeConfig) (*widgets.DateRangeField, error) {
	return widgets.NewDateRange(cfg)
}

// NewSurveyDriver returns the terminal prompt driver used by the field
// widgets in interactive sessions.
func NewSurveyDriver() prompt.Driver {
	return prompt.NewSurveyDriver()
}

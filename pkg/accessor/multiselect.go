package accessor

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/model"
)

// MultiSelectAccessor maps between stored option values (model) and the
// labels a selection dialog displays (view). Order is preserved in both
// directions.
//
// Model values with no configured option render as themselves so a control
// prefilled with legacy data still displays something. That edge is the
// accessor's documented lossy corner: ViewToModel rejects labels outside the
// option set, so out-of-set values render but do not round-trip.
type MultiSelectAccessor struct {
	options       []model.Option
	labelByValue  map[string]string
	valueByLabel  map[string]string
	knownValueSet map[string]struct{}
}

// NewMultiSelect builds an accessor over the given option set. Duplicate
// values or duplicate display labels are rejected: they would make the
// mapping ambiguous in one direction.
func NewMultiSelect(options []model.Option) (*MultiSelectAccessor, error) {
	acc := &MultiSelectAccessor{
		options:       append([]model.Option(nil), options...),
		labelByValue:  make(map[string]string, len(options)),
		valueByLabel:  make(map[string]string, len(options)),
		knownValueSet: make(map[string]struct{}, len(options)),
	}
	for _, opt := range options {
		if _, exists := acc.labelByValue[opt.Value]; exists {
			return nil, fmt.Errorf("accessor: duplicate option value %q", opt.Value)
		}
		display := opt.Display()
		if _, exists := acc.valueByLabel[display]; exists {
			return nil, fmt.Errorf("accessor: duplicate option label %q", display)
		}
		acc.labelByValue[opt.Value] = display
		acc.valueByLabel[display] = opt.Value
		acc.knownValueSet[opt.Value] = struct{}{}
	}
	return acc, nil
}

// Options returns the configured option set.
func (a *MultiSelectAccessor) Options() []model.Option {
	return append([]model.Option(nil), a.options...)
}

// ModelToView translates stored values into display labels.
func (a *MultiSelectAccessor) ModelToView(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, value := range values {
		if label, ok := a.labelByValue[value]; ok {
			out[i] = label
			continue
		}
		out[i] = value
	}
	return out
}

// ViewToModel translates display labels back into stored values. A label
// that matches neither a configured label nor a configured raw value fails
// the whole conversion; partial results never escape.
func (a *MultiSelectAccessor) ViewToModel(labels []string) ([]string, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	out := make([]string, len(labels))
	for i, label := range labels {
		if value, ok := a.valueByLabel[label]; ok {
			out[i] = value
			continue
		}
		if _, ok := a.knownValueSet[label]; ok {
			out[i] = label
			continue
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, label)
	}
	return out, nil
}

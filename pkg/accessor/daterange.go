package accessor

import (
	"fmt"
	"time"

	"github.com/goliatone/go-formbind/pkg/forms"
)

// DateLayout is the wire format range views use for their bounds.
const DateLayout = "2006-01-02"

// DateRange is the model value of a range picker: a closed (start, end)
// interval at date precision.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// RangeView is what a range picker displays and emits: the two bounds as
// formatted strings, either both set or both empty. The zero RangeView is the
// empty-range sentinel a widget renders as "no selection".
type RangeView struct {
	Start string
	End   string
}

// Empty reports whether the view carries no selection at all.
func (v RangeView) Empty() bool {
	return v.Start == "" && v.End == ""
}

// DateRangeOption configures a DateRangeAccessor.
type DateRangeOption func(*DateRangeAccessor)

// WithLayout overrides the date layout used for both directions.
func WithLayout(layout string) DateRangeOption {
	return func(a *DateRangeAccessor) {
		if layout != "" {
			a.layout = layout
		}
	}
}

// DateRangeAccessor maps between *DateRange model values and RangeView
// display values. A nil model maps to the empty sentinel and back, so "no
// selection" survives the round trip. Sub-day precision is truncated by the
// layout; that is the accessor's documented lossy edge.
type DateRangeAccessor struct {
	layout string
}

// NewDateRange constructs the accessor with the default layout.
func NewDateRange(options ...DateRangeOption) *DateRangeAccessor {
	a := &DateRangeAccessor{layout: DateLayout}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Layout returns the configured date layout.
func (a *DateRangeAccessor) Layout() string { return a.layout }

// ModelToView formats the interval bounds. Nil produces the empty sentinel.
func (a *DateRangeAccessor) ModelToView(value *DateRange) RangeView {
	if value == nil {
		return RangeView{}
	}
	return RangeView{
		Start: value.Start.Format(a.layout),
		End:   value.End.Format(a.layout),
	}
}

// ViewToModel parses the interval bounds. The empty sentinel maps back to
// nil. A view with exactly one bound set is an unfinished interaction and
// fails with ErrIncompleteRange; an inverted interval fails with
// ErrInvertedRange. On any failure no partial model value is produced.
func (a *DateRangeAccessor) ViewToModel(view RangeView) (*DateRange, error) {
	if view.Empty() {
		return nil, nil
	}
	if view.Start == "" || view.End == "" {
		return nil, ErrIncompleteRange
	}

	start, err := time.Parse(a.layout, view.Start)
	if err != nil {
		return nil, fmt.Errorf("accessor: parse range start %q: %w", view.Start, err)
	}
	end, err := time.Parse(a.layout, view.End)
	if err != nil {
		return nil, fmt.Errorf("accessor: parse range end %q: %w", view.End, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s before %s", ErrInvertedRange, view.End, view.Start)
	}

	return &DateRange{Start: start, End: end}, nil
}

// WithinBounds validates that a selected range stays inside the explicitly
// configured first and last selectable dates. Bounds are required
// configuration; there is no default far-future sentinel.
func WithinBounds(first, last time.Time) forms.Validator[*DateRange] {
	return func(value *DateRange) *forms.ValidationError {
		if value == nil {
			return nil
		}
		if value.Start.Before(first) || value.End.After(last) {
			err := forms.NewValidationError(forms.ErrorKindRange,
				"first", first.Format(DateLayout),
				"last", last.Format(DateLayout))
			return &err
		}
		return nil
	}
}

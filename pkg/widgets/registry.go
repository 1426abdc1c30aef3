package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbind/pkg/model"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetMultiSelect = "multiselect"
	WidgetDateRange   = "daterange"
	WidgetConfirm     = "confirm"
	WidgetInput       = "input"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(spec model.FieldSpec) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order. An
// empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit
// Metadata["widget"] hint is honoured before matcher evaluation.
func (r *Registry) Resolve(spec model.FieldSpec) (string, bool) {
	if explicit := explicitWidget(spec); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}

	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	if len(rules) == 0 {
		return "", false
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(spec) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate implements model.Decorator, stamping the resolved widget name
// into the field metadata when none is present.
func (r *Registry) Decorate(spec *model.FieldSpec) error {
	if r == nil || spec == nil {
		return nil
	}
	widget, ok := r.Resolve(*spec)
	if !ok {
		return nil
	}
	if spec.Metadata == nil {
		spec.Metadata = make(map[string]string)
	}
	if spec.Metadata["widget"] == "" {
		spec.Metadata["widget"] = widget
	}
	return nil
}

func explicitWidget(spec model.FieldSpec) string {
	if spec.Metadata == nil {
		return ""
	}
	return strings.TrimSpace(spec.Metadata["widget"])
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetMultiSelect, 80, func(spec model.FieldSpec) bool {
		return spec.Kind == model.FieldKindArray && len(spec.Options) > 0
	})

	r.Register(WidgetDateRange, 70, func(spec model.FieldSpec) bool {
		return spec.Kind == model.FieldKindString && strings.EqualFold(spec.Format, "date-range")
	})

	r.Register(WidgetConfirm, 60, func(spec model.FieldSpec) bool {
		return spec.Kind == model.FieldKindBoolean
	})

	r.Register(WidgetInput, 10, func(spec model.FieldSpec) bool {
		return spec.Kind == model.FieldKindString
	})
}

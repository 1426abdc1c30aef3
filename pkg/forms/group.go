package forms

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ControlRef is the untyped view of a control a Group can hold. Concrete
// *Control[M] values implement it for any M.
type ControlRef interface {
	Touched() bool
	Dirty() bool
	Enabled() bool
	Valid() bool
	Errors() map[string]ValidationError
}

// Group registers controls by name so bindings can resolve a control through
// a lookup key instead of a direct reference. Registration is guarded for
// init-time wiring from multiple goroutines; the controls themselves remain
// single-threaded.
type Group struct {
	mu       sync.RWMutex
	controls map[string]ControlRef
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{
		controls: make(map[string]ControlRef),
	}
}

// Add registers a control under the given name. Empty names, nil controls,
// and duplicate names return an error.
func (g *Group) Add(name string, control ControlRef) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("forms: control name is required")
	}
	if control == nil {
		return fmt.Errorf("forms: control %q is nil", trimmed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.controls[trimmed]; exists {
		return fmt.Errorf("forms: control %q already registered", trimmed)
	}
	g.controls[trimmed] = control
	return nil
}

// MustAdd panics on registration failure. Useful for init-time wiring.
func (g *Group) MustAdd(name string, control ControlRef) {
	if err := g.Add(name, control); err != nil {
		panic(err)
	}
}

// Ref retrieves the untyped control registered under name.
func (g *Group) Ref(name string) (ControlRef, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ref, ok := g.controls[name]
	return ref, ok
}

// Names returns the registered control names in sorted order.
func (g *Group) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.controls))
	for name := range g.controls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Valid reports whether every registered control is valid.
func (g *Group) Valid() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, ref := range g.controls {
		if !ref.Valid() {
			return false
		}
	}
	return true
}

// Named resolves the control registered under name as a *Control[M]. It
// fails when the name is unknown or the registered control holds a different
// model type.
func Named[M any](group *Group, name string) (*Control[M], error) {
	if group == nil {
		return nil, fmt.Errorf("forms: group is nil")
	}
	ref, ok := group.Ref(name)
	if !ok {
		return nil, fmt.Errorf("forms: control %q not found", name)
	}
	control, ok := ref.(*Control[M])
	if !ok {
		return nil, fmt.Errorf("forms: control %q holds a different model type", name)
	}
	return control, nil
}

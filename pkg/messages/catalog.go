package messages

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// Catalog maps validation error kinds to display message templates. Templates
// use pongo2 syntax and interpolate the parameters the validator attached,
// e.g. "select at least {{ value }} items". Catalogs are immutable once
// built; Merge returns a new catalog.
type Catalog struct {
	templates map[string]*pongo2.Template
	sources   map[string]string
}

// New builds a catalog from raw kind → template pairs. Template compilation
// failures are reported immediately with the offending kind.
func New(raw map[string]string) (*Catalog, error) {
	cat := &Catalog{
		templates: make(map[string]*pongo2.Template, len(raw)),
		sources:   make(map[string]string, len(raw)),
	}
	for kind, source := range raw {
		trimmed := strings.TrimSpace(kind)
		if trimmed == "" {
			return nil, fmt.Errorf("messages: message kind is required")
		}
		tpl, err := pongo2.FromString(source)
		if err != nil {
			return nil, fmt.Errorf("messages: compile template for %q: %w", trimmed, err)
		}
		cat.templates[trimmed] = tpl
		cat.sources[trimmed] = source
	}
	return cat, nil
}

// MustNew panics on compilation failure. Useful for init-time wiring.
func MustNew(raw map[string]string) *Catalog {
	cat, err := New(raw)
	if err != nil {
		panic(err)
	}
	return cat
}

// Merge returns a new catalog with the overrides layered on top of the
// receiver. Neither input is mutated.
func (c *Catalog) Merge(overrides *Catalog) *Catalog {
	if c == nil {
		return overrides
	}
	if overrides == nil || len(overrides.templates) == 0 {
		return c
	}
	out := &Catalog{
		templates: make(map[string]*pongo2.Template, len(c.templates)+len(overrides.templates)),
		sources:   make(map[string]string, len(c.sources)+len(overrides.sources)),
	}
	for kind, tpl := range c.templates {
		out.templates[kind] = tpl
		out.sources[kind] = c.sources[kind]
	}
	for kind, tpl := range overrides.templates {
		out.templates[kind] = tpl
		out.sources[kind] = overrides.sources[kind]
	}
	return out
}

// Kinds returns the catalogued kinds in sorted order.
func (c *Catalog) Kinds() []string {
	if c == nil {
		return nil
	}
	kinds := make([]string, 0, len(c.templates))
	for kind := range c.templates {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Resolve interpolates the template registered for kind with the supplied
// parameters. The second return is false when the kind is not catalogued.
// When interpolation fails at render time the raw template source is
// returned rather than dropping the message.
func (c *Catalog) Resolve(kind string, params map[string]string) (string, bool) {
	if c == nil {
		return "", false
	}
	tpl, ok := c.templates[kind]
	if !ok {
		return "", false
	}

	ctx := make(pongo2.Context, len(params))
	for key, value := range params {
		ctx[key] = value
	}

	rendered, err := tpl.Execute(ctx)
	if err != nil {
		return c.sources[kind], true
	}
	return strings.TrimSpace(rendered), true
}

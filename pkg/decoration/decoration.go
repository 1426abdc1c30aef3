package decoration

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Token keys a theme manifest can set to control prompt decoration.
const (
	TokenPromptPrefix   = "prompt.prefix"
	TokenInfoPrefix     = "prompt.infoPrefix"
	TokenErrorPrefix    = "prompt.errorPrefix"
	TokenRequiredSuffix = "prompt.requiredSuffix"
)

// Defaults carries the decoration applied around prompts: message prefixes
// and the marker appended to required-field labels. Values merge
// functionally; a Defaults is never mutated in place.
type Defaults struct {
	PromptPrefix   string
	InfoPrefix     string
	ErrorPrefix    string
	RequiredSuffix string
}

// Base returns the decoration used when no theme is configured.
func Base() Defaults {
	return Defaults{
		ErrorPrefix:    "! ",
		RequiredSuffix: " *",
	}
}

// FromSelection resolves decoration from a theme selection: base values
// overlaid with manifest tokens, then variant tokens. A nil selection or
// manifest yields Base.
func FromSelection(selection *theme.Selection) Defaults {
	out := Base()
	if selection == nil || selection.Manifest == nil {
		return out
	}

	out = out.mergeTokens(selection.Manifest.Tokens)
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		out = out.mergeTokens(variant.Tokens)
	}
	return out
}

// Merge returns a copy of d with the non-empty fields of override applied.
// Neither input changes.
func (d Defaults) Merge(override Defaults) Defaults {
	out := d
	if override.PromptPrefix != "" {
		out.PromptPrefix = override.PromptPrefix
	}
	if override.InfoPrefix != "" {
		out.InfoPrefix = override.InfoPrefix
	}
	if override.ErrorPrefix != "" {
		out.ErrorPrefix = override.ErrorPrefix
	}
	if override.RequiredSuffix != "" {
		out.RequiredSuffix = override.RequiredSuffix
	}
	return out
}

// Label decorates a field label, appending the required marker when asked.
func (d Defaults) Label(label string, required bool) string {
	out := d.PromptPrefix + label
	if required {
		out += d.RequiredSuffix
	}
	return out
}

// ErrorLine decorates a validation message for display.
func (d Defaults) ErrorLine(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return ""
	}
	return d.ErrorPrefix + msg
}

// InfoLine decorates an informational message for display.
func (d Defaults) InfoLine(msg string) string {
	return d.InfoPrefix + msg
}

func (d Defaults) mergeTokens(tokens map[string]string) Defaults {
	if len(tokens) == 0 {
		return d
	}
	return d.Merge(Defaults{
		PromptPrefix:   tokens[TokenPromptPrefix],
		InfoPrefix:     tokens[TokenInfoPrefix],
		ErrorPrefix:    tokens[TokenErrorPrefix],
		RequiredSuffix: tokens[TokenRequiredSuffix],
	})
}

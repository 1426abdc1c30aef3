// Package decoration resolves the prompt decoration defaults widgets apply:
// message prefixes and required-field markers, sourced from a go-theme
// selection and merged functionally with per-widget overrides. Help text is
// sanitised before display.
package decoration

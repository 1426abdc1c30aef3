// Package messages maps validation error kinds to display message templates.
// Catalogs load from JSON/YAML files over an fs.FS, merge functionally, and
// interpolate validator parameters through pongo2 templates. A bundled
// default catalog covers the built-in error kinds.
package messages

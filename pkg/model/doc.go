// Package model defines the typed field descriptors consumed by the widget
// and binding layers. The concrete types live in internal/model and are
// re-exported here. A FieldSpec carries presentation metadata (label, help,
// placeholder, options) and validation rules with string parameters so
// descriptors serialise deterministically; it never carries a value, values
// belong to the bound form control.
package model

// Package forms implements the reactive form-state collaborator: typed
// controls that own a value plus validity, touched, and dirty state, and a
// Group that resolves controls by name for lookup-key bindings. Validation
// failures are data on the control, never Go errors; they surface as display
// text through the binding layer.
package forms

// Package binding keeps a presentation widget and a form control mutually
// consistent. A Binding reads the control through a value accessor to derive
// render state, and pushes confirmed view values back as a single touched +
// set-value mutation. Configuration mistakes fail fast with
// ConfigurationError; cancelled interactions are silent no-ops; validation
// errors are display data resolved through a message catalog.
package binding

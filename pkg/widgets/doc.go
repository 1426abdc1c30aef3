// Package widgets provides the bound interactive fields: a multi-select
// dialog and a date-range picker, each adapting a prompt-driver widget to a
// reactive form control through a binding and a value accessor. A registry
// resolves which widget should handle a given field descriptor.
package widgets

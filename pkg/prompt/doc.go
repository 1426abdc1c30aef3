// Package prompt wraps the interactive widget toolkit behind a small Driver
// interface: a multi-select dialog, text input, and confirmation prompts.
// The default implementation uses survey; tests script a stub driver.
package prompt

package binding

import "fmt"

// ConfigurationError reports an unusable binding configuration: both or
// neither of control/control-name supplied, an unresolvable lookup, or a
// missing accessor. It is fatal at construction time and never recovered.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("binding: %s: %v", e.Reason, e.Err)
	}
	return "binding: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configErr(reason string) error {
	return &ConfigurationError{Reason: reason}
}

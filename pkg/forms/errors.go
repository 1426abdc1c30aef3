package forms

// Canonical error kinds reported by the built-in validators. Kinds are plain
// strings so callers can introduce their own without touching this package.
const (
	ErrorKindRequired  = "required"
	ErrorKindMinItems  = "minItems"
	ErrorKindMaxItems  = "maxItems"
	ErrorKindMinLength = "minLength"
	ErrorKindMaxLength = "maxLength"
	ErrorKindPattern   = "pattern"
	ErrorKindRange     = "range"
)

// ValidationError describes one failed constraint on a control. It is data,
// not a Go error: validation failures are carried on the control and rendered
// as display text, they never interrupt interaction.
type ValidationError struct {
	Kind   string
	Params map[string]string
}

// NewValidationError builds a ValidationError from a kind and alternating
// key/value parameter pairs. Dangling keys are ignored.
func NewValidationError(kind string, params ...string) ValidationError {
	err := ValidationError{Kind: kind}
	if len(params) > 1 {
		err.Params = make(map[string]string, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			err.Params[params[i]] = params[i+1]
		}
	}
	return err
}

package forms

// ControlOption configures a Control at construction time.
type ControlOption[M any] func(*Control[M])

// WithValidators attaches validators that run against every value the control
// receives, including the initial one.
func WithValidators[M any](validators ...Validator[M]) ControlOption[M] {
	return func(c *Control[M]) {
		for _, v := range validators {
			if v != nil {
				c.validators = append(c.validators, v)
			}
		}
	}
}

// WithDisabled constructs the control in the disabled state.
func WithDisabled[M any]() ControlOption[M] {
	return func(c *Control[M]) {
		c.disabled = true
	}
}

// Control owns one form field's current value and validation state. The value
// type is fixed for the control's lifetime. Controls are single-threaded by
// contract: all mutations happen on the event loop that drives the widgets,
// so no locking is performed here.
type Control[M any] struct {
	value       M
	errors      map[string]ValidationError
	touched     bool
	dirty       bool
	disabled    bool
	validators  []Validator[M]
	subscribers map[int]func(M)
	nextSubID   int
}

// NewControl creates a control holding the initial value. Validators run
// against the initial value immediately so a control can start out invalid
// without having been touched; no change notification is emitted for this.
func NewControl[M any](initial M, options ...ControlOption[M]) *Control[M] {
	c := &Control[M]{
		value:       initial,
		subscribers: make(map[int]func(M)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.revalidate()
	return c
}

// AddValidators attaches further validators after construction and re-runs
// validation against the current value. Like initial validation, no change
// notification is emitted.
func (c *Control[M]) AddValidators(validators ...Validator[M]) {
	for _, v := range validators {
		if v != nil {
			c.validators = append(c.validators, v)
		}
	}
	c.revalidate()
}

// Value returns the current model value.
func (c *Control[M]) Value() M {
	return c.value
}

// SetValue replaces the control's value, re-runs validators, marks the
// control dirty, and emits exactly one change notification. This is the sole
// path by which user interaction mutates model state.
func (c *Control[M]) SetValue(value M) {
	c.value = value
	c.dirty = true
	c.revalidate()
	for _, fn := range c.subscribers {
		fn(value)
	}
}

// Reset replaces the value and clears the touched/dirty flags without
// notifying subscribers. Validators still run so validity reflects the new
// value.
func (c *Control[M]) Reset(value M) {
	c.value = value
	c.touched = false
	c.dirty = false
	c.revalidate()
}

// MarkAsTouched records that the user has interacted with the control. It
// does not emit a value change notification.
func (c *Control[M]) MarkAsTouched() {
	c.touched = true
}

// Touched reports whether the user has interacted with the control.
func (c *Control[M]) Touched() bool { return c.touched }

// Dirty reports whether the value changed since construction or Reset.
func (c *Control[M]) Dirty() bool { return c.dirty }

// Enabled reports whether the control accepts interaction.
func (c *Control[M]) Enabled() bool { return !c.disabled }

// Enable marks the control as accepting interaction.
func (c *Control[M]) Enable() { c.disabled = false }

// Disable marks the control as rejecting interaction. Disabling does not
// clear value or validation state.
func (c *Control[M]) Disable() { c.disabled = true }

// Valid reports whether the current value passes every validator.
func (c *Control[M]) Valid() bool { return len(c.errors) == 0 }

// Errors returns the current validation errors keyed by kind. The returned
// map is a copy; mutating it does not affect the control.
func (c *Control[M]) Errors() map[string]ValidationError {
	if len(c.errors) == 0 {
		return nil
	}
	out := make(map[string]ValidationError, len(c.errors))
	for kind, err := range c.errors {
		out[kind] = err
	}
	return out
}

// Subscribe registers a value-change observer and returns a function that
// removes it. Observers fire once per SetValue, after validation.
func (c *Control[M]) Subscribe(fn func(M)) func() {
	if fn == nil {
		return func() {}
	}
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	return func() {
		delete(c.subscribers, id)
	}
}

func (c *Control[M]) revalidate() {
	c.errors = nil
	for _, validate := range c.validators {
		if err := validate(c.value); err != nil {
			if c.errors == nil {
				c.errors = make(map[string]ValidationError)
			}
			if _, exists := c.errors[err.Kind]; !exists {
				c.errors[err.Kind] = *err
			}
		}
	}
}

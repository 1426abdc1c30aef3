package forms

import (
	"regexp"
	"strconv"
)

// Validator inspects a candidate value and reports a failed constraint, or
// nil when the value is acceptable. Validators must be pure: they run on
// every value the control receives.
type Validator[M any] func(M) *ValidationError

// Required rejects the zero value of a comparable model type.
func Required[M comparable]() Validator[M] {
	return func(value M) *ValidationError {
		var zero M
		if value == zero {
			err := NewValidationError(ErrorKindRequired)
			return &err
		}
		return nil
	}
}

// RequiredSlice rejects empty slices.
func RequiredSlice[T any]() Validator[[]T] {
	return func(value []T) *ValidationError {
		if len(value) == 0 {
			err := NewValidationError(ErrorKindRequired)
			return &err
		}
		return nil
	}
}

// RequiredPointer rejects nil pointers.
func RequiredPointer[T any]() Validator[*T] {
	return func(value *T) *ValidationError {
		if value == nil {
			err := NewValidationError(ErrorKindRequired)
			return &err
		}
		return nil
	}
}

// MinItems rejects slices shorter than n. Empty slices are left to Required;
// a missing optional value should not also fail the length constraint.
func MinItems[T any](n int) Validator[[]T] {
	return func(value []T) *ValidationError {
		if len(value) == 0 || len(value) >= n {
			return nil
		}
		err := NewValidationError(ErrorKindMinItems,
			"value", strconv.Itoa(n),
			"actual", strconv.Itoa(len(value)))
		return &err
	}
}

// MaxItems rejects slices longer than n.
func MaxItems[T any](n int) Validator[[]T] {
	return func(value []T) *ValidationError {
		if len(value) <= n {
			return nil
		}
		err := NewValidationError(ErrorKindMaxItems,
			"value", strconv.Itoa(n),
			"actual", strconv.Itoa(len(value)))
		return &err
	}
}

// MinLength rejects strings shorter than n, ignoring empty strings for the
// same reason MinItems ignores empty slices.
func MinLength(n int) Validator[string] {
	return func(value string) *ValidationError {
		if value == "" || len([]rune(value)) >= n {
			return nil
		}
		err := NewValidationError(ErrorKindMinLength, "value", strconv.Itoa(n))
		return &err
	}
}

// Pattern rejects non-empty strings that do not match expr. The expression
// compiles once; a malformed expression produces a validator that rejects
// every non-empty value rather than silently passing.
func Pattern(expr string) Validator[string] {
	re, compileErr := regexp.Compile(expr)
	return func(value string) *ValidationError {
		if value == "" {
			return nil
		}
		if compileErr == nil && re.MatchString(value) {
			return nil
		}
		err := NewValidationError(ErrorKindPattern, "value", expr)
		return &err
	}
}

// MaxLength rejects strings longer than n.
func MaxLength(n int) Validator[string] {
	return func(value string) *ValidationError {
		if len([]rune(value)) <= n {
			return nil
		}
		err := NewValidationError(ErrorKindMaxLength, "value", strconv.Itoa(n))
		return &err
	}
}

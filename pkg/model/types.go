package model

import internalmodel "github.com/goliatone/go-formbind/internal/model"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	FieldKindString  = internalmodel.FieldKindString
	FieldKindInteger = internalmodel.FieldKindInteger
	FieldKindNumber  = internalmodel.FieldKindNumber
	FieldKindBoolean = internalmodel.FieldKindBoolean
	FieldKindArray   = internalmodel.FieldKindArray
)

const (
	ValidationRuleRequired  = internalmodel.ValidationRuleRequired
	ValidationRuleMinItems  = internalmodel.ValidationRuleMinItems
	ValidationRuleMaxItems  = internalmodel.ValidationRuleMaxItems
	ValidationRuleMinLength = internalmodel.ValidationRuleMinLength
	ValidationRuleMaxLength = internalmodel.ValidationRuleMaxLength
	ValidationRulePattern   = internalmodel.ValidationRulePattern
	ValidationRuleRange     = internalmodel.ValidationRuleRange
)

type ValidationRule = internalmodel.ValidationRule
type Option = internalmodel.Option
type FieldSpec = internalmodel.FieldSpec

// DefaultLabeler re-exports the internal name-to-label derivation.
func DefaultLabeler(name string) string {
	return internalmodel.DefaultLabeler(name)
}

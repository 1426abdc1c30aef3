package model

// FieldKind is the simplified enum for form-friendly field kinds.
type FieldKind string

const (
	FieldKindString  FieldKind = "string"
	FieldKindInteger FieldKind = "integer"
	FieldKindNumber  FieldKind = "number"
	FieldKindBoolean FieldKind = "boolean"
	FieldKindArray   FieldKind = "array"
)

const (
	ValidationRuleRequired  = "required"
	ValidationRuleMinItems  = "minItems"
	ValidationRuleMaxItems  = "maxItems"
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
	ValidationRuleRange     = "range"
)

// ValidationRule represents a single validation constraint attached to a
// field. Use the ValidationRule* constants for canonical kinds. Thresholds
// are encoded as string values in Params (Params["value"] for counts,
// Params["first"]/Params["last"] for range bounds) so descriptors stay
// serialisable and stable in snapshots.
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Option is a selectable value/label pair presented by choice widgets. Value
// is what the bound control stores; Label is what the widget displays.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Display returns the label when present, otherwise the raw value.
func (o Option) Display() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// FieldSpec describes one bindable form field: what the widget layer needs to
// present it and what the control layer needs to validate it. It carries no
// value; values live on the bound control.
type FieldSpec struct {
	Name        string            `json:"name"`
	Kind        FieldKind         `json:"kind"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Help        string            `json:"help,omitempty"`
	Options     []Option          `json:"options,omitempty"`
	Validations []ValidationRule  `json:"validations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

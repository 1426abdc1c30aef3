package model

import "strings"

// DisplayLabel resolves the label shown next to the field, deriving one from
// the name when no explicit label was configured.
func (f FieldSpec) DisplayLabel() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return DefaultLabeler(f.Name)
}

// OptionValues returns the stored values of the field options in order.
func (f FieldSpec) OptionValues() []string {
	if len(f.Options) == 0 {
		return nil
	}
	out := make([]string, len(f.Options))
	for i, opt := range f.Options {
		out[i] = opt.Value
	}
	return out
}

// OptionLabels returns the display labels of the field options in order.
func (f FieldSpec) OptionLabels() []string {
	if len(f.Options) == 0 {
		return nil
	}
	out := make([]string, len(f.Options))
	for i, opt := range f.Options {
		out[i] = opt.Display()
	}
	return out
}

// Clone returns a deep copy safe for decorators to mutate.
func (f FieldSpec) Clone() FieldSpec {
	out := f
	if len(f.Options) > 0 {
		out.Options = append([]Option(nil), f.Options...)
	}
	if len(f.Validations) > 0 {
		out.Validations = make([]ValidationRule, len(f.Validations))
		for i, rule := range f.Validations {
			cloned := rule
			if len(rule.Params) > 0 {
				cloned.Params = make(map[string]string, len(rule.Params))
				for k, v := range rule.Params {
					cloned.Params[k] = v
				}
			}
			out.Validations[i] = cloned
		}
	}
	if len(f.Metadata) > 0 {
		out.Metadata = make(map[string]string, len(f.Metadata))
		for k, v := range f.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

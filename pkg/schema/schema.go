// Package schema builds field specifications from OpenAPI schemas so form
// controls and widgets can be wired from the same documents that describe
// the backing API.
package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/model"
)

// ErrUnsupportedShape reports a schema the adapter cannot express as a flat
// field, such as nested objects or untyped nodes.
var ErrUnsupportedShape = errors.New("schema: unsupported schema shape")

// MetadataSourceKey records which component schema a field was generated
// from.
const MetadataSourceKey = "schema.source"

// LoadDocument parses an OpenAPI document from raw bytes.
func LoadDocument(ctx context.Context, data []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	return doc, nil
}

// ComponentFields extracts the fields of a named component schema from a
// loaded document.
func ComponentFields(doc *openapi3.T, component string) ([]model.FieldSpec, error) {
	if doc == nil || doc.Components == nil {
		return nil, fmt.Errorf("schema: document has no components")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: component %q not found", component)
	}
	fields, err := Fields(ref.Value)
	if err != nil {
		return nil, err
	}
	for i := range fields {
		if fields[i].Metadata == nil {
			fields[i].Metadata = make(map[string]string)
		}
		fields[i].Metadata[MetadataSourceKey] = component
	}
	return fields, nil
}

// Fields converts an object schema into one FieldSpec per property, sorted
// by property name. Non-object roots and nested objects are rejected.
func Fields(root *openapi3.Schema) ([]model.FieldSpec, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrUnsupportedShape)
	}
	if root.Type == nil || !root.Type.Is(openapi3.TypeObject) {
		return nil, fmt.Errorf("%w: root must be an object", ErrUnsupportedShape)
	}

	required := make(map[string]bool, len(root.Required))
	for _, name := range root.Required {
		required[name] = true
	}

	names := make([]string, 0, len(root.Properties))
	for name := range root.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]model.FieldSpec, 0, len(names))
	for _, name := range names {
		ref := root.Properties[name]
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("%w: property %q has no schema", ErrUnsupportedShape, name)
		}
		field, err := Field(name, ref.Value, required[name])
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// Field converts a single property schema into a FieldSpec.
func Field(name string, prop *openapi3.Schema, required bool) (model.FieldSpec, error) {
	if prop == nil {
		return model.FieldSpec{}, fmt.Errorf("%w: property %q has no schema", ErrUnsupportedShape, name)
	}

	kind, err := kindOf(name, prop)
	if err != nil {
		return model.FieldSpec{}, err
	}

	field := model.FieldSpec{
		Name:     name,
		Kind:     kind,
		Format:   prop.Format,
		Required: required,
		Label:    prop.Title,
		Help:     prop.Description,
	}
	if field.Label == "" {
		field.Label = model.DefaultLabeler(name)
	}

	if kind == model.FieldKindArray {
		options, err := arrayOptions(name, prop)
		if err != nil {
			return model.FieldSpec{}, err
		}
		field.Options = options
	} else if len(prop.Enum) > 0 {
		field.Options = enumOptions(prop.Enum)
	}

	field.Validations = rules(prop, required)
	return field, nil
}

// StringValidators materialises the validation rules of a string field.
func StringValidators(field model.FieldSpec) []forms.Validator[string] {
	var out []forms.Validator[string]
	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRuleRequired:
			out = append(out, forms.Required[string]())
		case model.ValidationRuleMinLength:
			if n, ok := ruleInt(rule, "value"); ok {
				out = append(out, forms.MinLength(n))
			}
		case model.ValidationRuleMaxLength:
			if n, ok := ruleInt(rule, "value"); ok {
				out = append(out, forms.MaxLength(n))
			}
		case model.ValidationRulePattern:
			if expr := rule.Params["value"]; expr != "" {
				out = append(out, forms.Pattern(expr))
			}
		}
	}
	return out
}

// SliceValidators materialises the validation rules of a multi-valued field.
func SliceValidators(field model.FieldSpec) []forms.Validator[[]string] {
	var out []forms.Validator[[]string]
	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRuleRequired:
			out = append(out, forms.RequiredSlice[string]())
		case model.ValidationRuleMinItems:
			if n, ok := ruleInt(rule, "value"); ok {
				out = append(out, forms.MinItems[string](n))
			}
		case model.ValidationRuleMaxItems:
			if n, ok := ruleInt(rule, "value"); ok {
				out = append(out, forms.MaxItems[string](n))
			}
		}
	}
	return out
}

func kindOf(name string, prop *openapi3.Schema) (model.FieldKind, error) {
	types := prop.Type
	switch {
	case types == nil:
		return "", fmt.Errorf("%w: property %q is untyped", ErrUnsupportedShape, name)
	case types.Is(openapi3.TypeString):
		return model.FieldKindString, nil
	case types.Is(openapi3.TypeInteger):
		return model.FieldKindInteger, nil
	case types.Is(openapi3.TypeNumber):
		return model.FieldKindNumber, nil
	case types.Is(openapi3.TypeBoolean):
		return model.FieldKindBoolean, nil
	case types.Is(openapi3.TypeArray):
		return model.FieldKindArray, nil
	default:
		return "", fmt.Errorf("%w: property %q has type %v", ErrUnsupportedShape, name, types.Slice())
	}
}

func arrayOptions(name string, prop *openapi3.Schema) ([]model.Option, error) {
	if prop.Items == nil || prop.Items.Value == nil {
		return nil, fmt.Errorf("%w: array property %q has no item schema", ErrUnsupportedShape, name)
	}
	items := prop.Items.Value
	if items.Type == nil || !items.Type.Is(openapi3.TypeString) {
		return nil, fmt.Errorf("%w: array property %q items must be strings", ErrUnsupportedShape, name)
	}
	return enumOptions(items.Enum), nil
}

func enumOptions(enum []any) []model.Option {
	options := make([]model.Option, 0, len(enum))
	for _, entry := range enum {
		value, ok := entry.(string)
		if !ok || value == "" {
			continue
		}
		options = append(options, model.Option{
			Value: value,
			Label: model.DefaultLabeler(value),
		})
	}
	return options
}

func rules(prop *openapi3.Schema, required bool) []model.ValidationRule {
	var out []model.ValidationRule
	add := func(kind string, params ...string) {
		rule := model.ValidationRule{Kind: kind}
		if len(params) > 0 {
			rule.Params = make(map[string]string, len(params)/2)
			for i := 0; i+1 < len(params); i += 2 {
				rule.Params[params[i]] = params[i+1]
			}
		}
		out = append(out, rule)
	}

	if required {
		add(model.ValidationRuleRequired)
	}
	if prop.MinItems > 0 {
		add(model.ValidationRuleMinItems, "value", strconv.FormatUint(prop.MinItems, 10))
	}
	if prop.MaxItems != nil {
		add(model.ValidationRuleMaxItems, "value", strconv.FormatUint(*prop.MaxItems, 10))
	}
	if prop.MinLength > 0 {
		add(model.ValidationRuleMinLength, "value", strconv.FormatUint(prop.MinLength, 10))
	}
	if prop.MaxLength != nil {
		add(model.ValidationRuleMaxLength, "value", strconv.FormatUint(*prop.MaxLength, 10))
	}
	if prop.Pattern != "" {
		add(model.ValidationRulePattern, "value", prop.Pattern)
	}
	return out
}

func ruleInt(rule model.ValidationRule, key string) (int, bool) {
	raw, ok := rule.Params[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

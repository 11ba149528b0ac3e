package config

import (
	"github.com/pkg/errors"
	"github.com/viant/harconfig/har/schema"
)

// VariantConfig holds the validated parameters of one variant. Values are
// never modified after construction; accessors return copies.
type VariantConfig struct {
	schema *schema.Variant
	values map[string]interface{}
}

// Family returns the family the variant belongs to.
func (v *VariantConfig) Family() schema.Family { return v.schema.Family }

// Name returns the variant name.
func (v *VariantConfig) Name() string { return v.schema.Name }

// Schema returns the variant's declared parameters.
func (v *VariantConfig) Schema() *schema.Variant { return v.schema }

// Keys returns the parameter names in sorted order.
func (v *VariantConfig) Keys() []string { return v.schema.Names() }

// Value returns the parameter value as int, float64, bool or []int.
func (v *VariantConfig) Value(name string) (interface{}, bool) {
	value, ok := v.values[name]
	if !ok {
		return nil, false
	}
	return copyValue(value), true
}

// Map returns a detached copy of all parameters.
func (v *VariantConfig) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(v.values))
	for k, value := range v.values {
		out[k] = copyValue(value)
	}
	return out
}

func (v *VariantConfig) lookup(name string, kind schema.Kind) (interface{}, error) {
	p, ok := v.schema.Parameter(name)
	if !ok {
		return nil, &UnknownParameterError{Family: v.Family(), Variant: v.Name(), Parameter: name}
	}
	if p.Kind != kind {
		return nil, &TypeMismatchError{Parameter: name, Want: p.Kind, Value: v.values[name]}
	}
	return v.values[name], nil
}

// Int returns an integer parameter.
func (v *VariantConfig) Int(name string) (int, error) {
	value, err := v.lookup(name, schema.Int)
	if err != nil {
		return 0, err
	}
	return value.(int), nil
}

// Float returns a floating point parameter.
func (v *VariantConfig) Float(name string) (float64, error) {
	value, err := v.lookup(name, schema.Float)
	if err != nil {
		return 0, err
	}
	return value.(float64), nil
}

// Bool returns a boolean parameter.
func (v *VariantConfig) Bool(name string) (bool, error) {
	value, err := v.lookup(name, schema.Bool)
	if err != nil {
		return false, err
	}
	return value.(bool), nil
}

// Ints returns a copy of an integer list parameter.
func (v *VariantConfig) Ints(name string) ([]int, error) {
	value, err := v.lookup(name, schema.IntList)
	if err != nil {
		return nil, err
	}
	return copyValue(value).([]int), nil
}

// WithOverrides returns a new VariantConfig equal to v except for the keys
// present in overrides. v itself is left unchanged.
func (v *VariantConfig) WithOverrides(overrides map[string]interface{}) (*VariantConfig, error) {
	values := v.Map()
	for name, raw := range overrides {
		p, ok := v.schema.Parameter(name)
		if !ok {
			return nil, &UnknownParameterError{Family: v.Family(), Variant: v.Name(), Parameter: name}
		}
		value, ok := coerce(p, raw)
		if !ok {
			return nil, &TypeMismatchError{Parameter: name, Want: p.Kind, Value: raw}
		}
		if reason := checkRange(p, value); reason != "" {
			return nil, errors.Wrapf(&SchemaError{Path: v.path(name), Reason: reason}, "override rejected")
		}
		values[name] = value
	}
	return &VariantConfig{schema: v.schema, values: values}, nil
}

func (v *VariantConfig) path(param string) string {
	return v.Family().Section() + "." + v.Name() + "." + param
}

// newVariantConfig validates raw document parameters against the variant
// schema; every declared parameter is required.
func newVariantConfig(variant *schema.Variant, raw map[string]interface{}) (*VariantConfig, error) {
	ret := &VariantConfig{schema: variant, values: make(map[string]interface{}, len(variant.Parameters))}
	for _, name := range sortedKeys(raw) {
		if _, ok := variant.Parameter(name); !ok {
			return nil, &SchemaError{Path: ret.path(name), Reason: "unknown parameter"}
		}
	}
	for i := range variant.Parameters {
		p := &variant.Parameters[i]
		rawValue, ok := raw[p.Name]
		if !ok {
			return nil, &SchemaError{Path: ret.path(p.Name), Reason: "missing parameter"}
		}
		value, ok := coerce(p, rawValue)
		if !ok {
			return nil, &SchemaError{Path: ret.path(p.Name), Reason: (&TypeMismatchError{Parameter: p.Name, Want: p.Kind, Value: rawValue}).Error()}
		}
		if reason := checkRange(p, value); reason != "" {
			return nil, &SchemaError{Path: ret.path(p.Name), Reason: reason}
		}
		ret.values[p.Name] = value
	}
	return ret, nil
}

package config

import (
	"fmt"

	"github.com/viant/harconfig/har/schema"
)

// NotFoundError reports a missing configuration document.
type NotFoundError struct {
	Location string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config %q not found", e.Location)
}

// ParseError reports a document that is not well-formed YAML.
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config %q: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a document whose structure or values do not match the
// schema. Path is a dotted location such as efnet_encoder.sa_har.n_heads.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "invalid config: " + e.Reason
	}
	return fmt.Sprintf("invalid config at %s: %s", e.Path, e.Reason)
}

// UnknownVariantError reports a lookup of a variant absent from the loaded
// family section.
type UnknownVariantError struct {
	Family schema.Family
	Name   string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Family, e.Name)
}

// UnknownParameterError reports a parameter outside a variant's schema.
type UnknownParameterError struct {
	Family    schema.Family
	Variant   string
	Parameter string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q for %s variant %q", e.Parameter, e.Family, e.Variant)
}

// TypeMismatchError reports a value whose type disagrees with the
// parameter's declared kind.
type TypeMismatchError struct {
	Parameter string
	Want      schema.Kind
	Value     interface{}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter %q expects %v, got %T (%v)", e.Parameter, e.Want, e.Value, e.Value)
}

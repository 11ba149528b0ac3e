package config

import (
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/harconfig/har/schema"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Config is a validated configuration document. It is safe for concurrent
// use by any number of readers.
type Config struct {
	location     string
	schema       *schema.Schema
	families     map[schema.Family]map[string]*VariantConfig
	unrecognized []string
}

// Location returns where the document was loaded from, empty for parsed data.
func (c *Config) Location() string { return c.location }

// Schema returns the schema the document was validated against.
func (c *Config) Schema() *schema.Schema { return c.schema }

// Unrecognized returns top-level keys that are not family sections. They are
// ignored.
func (c *Config) Unrecognized() []string { return append([]string{}, c.unrecognized...) }

// Variant returns the validated parameters of a family variant.
func (c *Config) Variant(family schema.Family, name string) (*VariantConfig, error) {
	if v, ok := c.families[family][name]; ok {
		return v, nil
	}
	return nil, &UnknownVariantError{Family: family, Name: name}
}

// Variants returns the variant names present in a family section, sorted.
func (c *Config) Variants(family schema.Family) []string {
	return sortedKeys(c.families[family])
}

// Map returns a detached copy of the document keyed by section, variant and
// parameter.
func (c *Config) Map() map[string]map[string]map[string]interface{} {
	out := make(map[string]map[string]map[string]interface{}, len(schema.Families))
	for _, family := range schema.Families {
		section := make(map[string]map[string]interface{}, len(c.families[family]))
		for name, v := range c.families[family] {
			section[name] = v.Map()
		}
		out[family.Section()] = section
	}
	return out
}

// Marshal serializes the document back to YAML. Parse(Marshal()) yields an
// equal Config.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c.Map())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return data, nil
}

// Option customises Load and Parse.
type Option func(*options)

type options struct {
	schema *schema.Schema
	fs     afs.Service
}

// WithSchema validates against a custom schema instead of schema.HAR().
func WithSchema(s *schema.Schema) Option {
	return func(o *options) { o.schema = s }
}

// WithFS sets the storage service used by Load.
func WithFS(fs afs.Service) Option {
	return func(o *options) { o.fs = fs }
}

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.schema == nil {
		ret.schema = schema.HAR()
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// Load reads and validates the document at location, a local path or any URL
// supported by afs.
func Load(ctx context.Context, location string, opts ...Option) (*Config, error) {
	o := newOptions(opts)
	URL, err := NormalizeURL(location)
	if err != nil {
		return nil, err
	}
	exists, err := o.fs.Exists(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check config %q", location)
	}
	if !exists {
		return nil, &NotFoundError{Location: location}
	}
	data, err := o.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", location)
	}
	cfg, err := parse(location, data, o)
	if err != nil {
		return nil, err
	}
	cfg.location = location
	return cfg, nil
}

// Parse validates an in-memory document.
func Parse(data []byte, opts ...Option) (*Config, error) {
	return parse("", data, newOptions(opts))
}

// Default returns the reference document shipped with the module.
func Default() (*Config, error) {
	return Parse(defaultDocument)
}

// NormalizeURL turns a local path into an absolute file URL; URLs with a scheme
// are returned unchanged.
func NormalizeURL(location string) (string, error) {
	if location == "" {
		return "", &NotFoundError{Location: location}
	}
	if strings.Contains(location, "://") {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve config path %q", location)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func parse(location string, data []byte, o *options) (*Config, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Location: location, Err: err}
	}
	document, ok := asMap(raw)
	if !ok && raw != nil {
		return nil, &SchemaError{Reason: fmt.Sprintf("document must be a mapping, got %T", raw)}
	}
	cfg := &Config{
		schema:   o.schema,
		families: make(map[schema.Family]map[string]*VariantConfig, len(schema.Families)),
	}
	known := make(map[string]bool, len(schema.Families))
	for _, family := range schema.Families {
		section := family.Section()
		known[section] = true
		rawSection, ok := document[section]
		if !ok {
			return nil, &SchemaError{Path: section, Reason: "missing section"}
		}
		variants, err := parseSection(o.schema, family, rawSection)
		if err != nil {
			return nil, err
		}
		cfg.families[family] = variants
	}
	for _, key := range sortedKeys(document) {
		if !known[key] {
			cfg.unrecognized = append(cfg.unrecognized, key)
		}
	}
	return cfg, nil
}

// parseSection validates one family section. A null section is an empty
// family: every variant may be disabled.
func parseSection(s *schema.Schema, family schema.Family, raw interface{}) (map[string]*VariantConfig, error) {
	ret := make(map[string]*VariantConfig)
	if raw == nil {
		return ret, nil
	}
	section, ok := asMap(raw)
	if !ok {
		return nil, &SchemaError{Path: family.Section(), Reason: fmt.Sprintf("expected mapping of variants, got %T", raw)}
	}
	for _, name := range sortedKeys(section) {
		path := family.Section() + "." + name
		variant, ok := s.Lookup(family, name)
		if !ok {
			return nil, &SchemaError{Path: path, Reason: "unknown variant"}
		}
		params, ok := asMap(section[name])
		if !ok && section[name] != nil {
			return nil, &SchemaError{Path: path, Reason: fmt.Sprintf("expected mapping of parameters, got %T", section[name])}
		}
		vc, err := newVariantConfig(variant, params)
		if err != nil {
			return nil, err
		}
		ret[name] = vc
	}
	return ret, nil
}

func asMap(raw interface{}) (map[string]interface{}, bool) {
	switch v := raw.(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		ret := make(map[string]interface{}, len(v))
		for k, item := range v {
			ret[fmt.Sprint(k)] = item
		}
		return ret, true
	}
	return nil, false
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

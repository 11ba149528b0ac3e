package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/harconfig/har/config"
	"github.com/viant/harconfig/har/schema"
)

// Separator splits individual settings.
const Separator = ";"

// FilePrefix marks a setting that names a file of settings, one or more per
// line; lines starting with "#" are comments.
const FilePrefix = "file:"

// Option customises Parse and Apply.
type Option func(*options)

type options struct {
	fs afs.Service
}

// WithFS sets the storage service used to read "file:" settings.
func WithFS(fs afs.Service) Option {
	return func(o *options) { o.fs = fs }
}

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// Parse converts settings into overrides for variant. The variant schema
// picks the parser of each value:
//
//   - int: JSON integer, "_" may separate digits (1_000)
//   - float: JSON number
//   - bool: true/false, yes/no, t/f, y/n, 1/0 (case insensitive)
//   - []int: comma separated integers, optionally in brackets
//
// A later setting of the same parameter wins.
func Parse(ctx context.Context, variant *config.VariantConfig, settings string, opts ...Option) (map[string]interface{}, error) {
	o := newOptions(opts)
	overrides := make(map[string]interface{})
	for _, setting := range strings.Split(settings, Separator) {
		if err := parseSetting(ctx, o, variant, setting, overrides); err != nil {
			return nil, err
		}
	}
	return overrides, nil
}

// Apply parses settings and derives a new VariantConfig from variant.
func Apply(ctx context.Context, variant *config.VariantConfig, settings string, opts ...Option) (*config.VariantConfig, error) {
	overrides, err := Parse(ctx, variant, settings, opts...)
	if err != nil {
		return nil, err
	}
	return variant.WithOverrides(overrides)
}

func parseSetting(ctx context.Context, o *options, variant *config.VariantConfig, setting string, overrides map[string]interface{}) error {
	setting = strings.TrimSpace(setting)
	if setting == "" {
		return nil
	}
	if strings.HasPrefix(setting, FilePrefix) {
		return parseFile(ctx, o, variant, strings.TrimPrefix(setting, FilePrefix), overrides)
	}
	parts := strings.Split(setting, "=")
	if len(parts) != 2 {
		return errors.Errorf("can't parse setting %q: each setting requires the format \"<param>=<value>\"", setting)
	}
	name, valueStr := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	p, ok := variant.Schema().Parameter(name)
	if !ok {
		return &config.UnknownParameterError{Family: variant.Family(), Variant: variant.Name(), Parameter: name}
	}
	value, err := parseValue(p.Kind, valueStr)
	if err != nil {
		return errors.Wrapf(&config.TypeMismatchError{Parameter: name, Want: p.Kind, Value: valueStr},
			"failed to parse value %q for parameter %q: %v", valueStr, name, err)
	}
	overrides[name] = value
	return nil
}

func parseFile(ctx context.Context, o *options, variant *config.VariantConfig, location string, overrides map[string]interface{}) error {
	URL, err := config.NormalizeURL(location)
	if err != nil {
		return err
	}
	data, err := o.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return errors.Wrapf(err, "failed to read settings from file %q", location)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, setting := range strings.Split(line, Separator) {
			if err := parseSetting(ctx, o, variant, setting, overrides); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseValue(kind schema.Kind, valueStr string) (interface{}, error) {
	switch kind {
	case schema.Int:
		var v int
		err := json.Unmarshal([]byte(strings.ReplaceAll(valueStr, "_", "")), &v)
		return v, err
	case schema.Float:
		var v float64
		err := json.Unmarshal([]byte(valueStr), &v)
		return v, err
	case schema.Bool:
		return ParseBool(valueStr)
	case schema.IntList:
		valueStr = strings.TrimSuffix(strings.TrimPrefix(valueStr, "["), "]")
		if strings.TrimSpace(valueStr) == "" {
			return []int{}, nil
		}
		parts := strings.Split(valueStr, ",")
		values := make([]int, len(parts))
		for i, part := range parts {
			part = strings.ReplaceAll(strings.TrimSpace(part), "_", "")
			if err := json.Unmarshal([]byte(part), &values[i]); err != nil {
				return nil, err
			}
		}
		return values, nil
	}
	return nil, errors.Errorf("don't know how to parse kind %v", kind)
}

// ParseBool accepts true/false, yes/no, t/f, y/n and 1/0 in any case.
func ParseBool(valueStr string) (bool, error) {
	switch strings.ToLower(valueStr) {
	case "yes", "true", "t", "y", "1":
		return true, nil
	case "no", "false", "f", "n", "0":
		return false, nil
	}
	return false, errors.Errorf("boolean value expected")
}

// Sprint formats the variant parameters, one "name": (type) value per line.
func Sprint(variant *config.VariantConfig) string {
	values := variant.Map()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("\t%q: (%T) %v", name, values[name], values[name])
	}
	return strings.Join(parts, "\n")
}

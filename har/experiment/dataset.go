package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/harconfig/har/config"
	"gopkg.in/yaml.v3"
)

// Dataset describes the recording geometry of one dataset.
type Dataset struct {
	Filename      string  `yaml:"filename" json:"filename"`
	WindowSeconds float64 `yaml:"window_seconds" json:"windowSeconds"`
	SamplingFreq  float64 `yaml:"sampling_freq" json:"samplingFreq"`
	NumChannels   int     `yaml:"num_channels" json:"numChannels"`
	NumClasses    int     `yaml:"num_classes" json:"numClasses"`
}

// WindowSize returns the number of samples per window.
func (d *Dataset) WindowSize() int {
	return int(d.WindowSeconds * d.SamplingFreq)
}

func (d *Dataset) validate(name string) error {
	switch {
	case d.Filename == "":
		return &config.SchemaError{Path: name + ".filename", Reason: "missing filename"}
	case d.WindowSeconds <= 0:
		return &config.SchemaError{Path: name + ".window_seconds", Reason: "must be positive"}
	case d.SamplingFreq <= 0:
		return &config.SchemaError{Path: name + ".sampling_freq", Reason: "must be positive"}
	case d.NumChannels <= 0:
		return &config.SchemaError{Path: name + ".num_channels", Reason: "must be positive"}
	case d.NumClasses <= 0:
		return &config.SchemaError{Path: name + ".num_classes", Reason: "must be positive"}
	case d.WindowSize() <= 0:
		return &config.SchemaError{Path: name, Reason: "window shorter than one sample"}
	}
	return nil
}

// UnknownDatasetError reports a dataset name absent from data.yaml.
type UnknownDatasetError struct {
	Name string
}

func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("unknown dataset %q", e.Name)
}

// Datasets maps dataset names to their geometry.
type Datasets map[string]*Dataset

// Lookup returns the named dataset.
func (d Datasets) Lookup(name string) (*Dataset, error) {
	if ds, ok := d[name]; ok {
		return ds, nil
	}
	return nil, &UnknownDatasetError{Name: name}
}

// Names returns dataset names in sorted order.
func (d Datasets) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseDatasets decodes and validates a data.yaml document.
func ParseDatasets(data []byte) (Datasets, error) {
	var ret Datasets
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, &config.ParseError{Err: err}
	}
	for _, name := range ret.Names() {
		if ret[name] == nil {
			return nil, &config.SchemaError{Path: name, Reason: "empty dataset"}
		}
		if err := ret[name].validate(name); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// Option customises LoadDatasets.
type Option func(*options)

type options struct {
	fs afs.Service
}

// WithFS sets the storage service used by LoadDatasets.
func WithFS(fs afs.Service) Option {
	return func(o *options) { o.fs = fs }
}

// LoadDatasets reads data.yaml from a local path or afs URL.
func LoadDatasets(ctx context.Context, location string, opts ...Option) (Datasets, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	fs := o.fs
	if fs == nil {
		fs = afs.New()
	}
	URL, err := config.NormalizeURL(location)
	if err != nil {
		return nil, err
	}
	exists, err := fs.Exists(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check datasets %q", location)
	}
	if !exists {
		return nil, &config.NotFoundError{Location: location}
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read datasets %q", location)
	}
	ret, err := ParseDatasets(data)
	if err != nil {
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Location = location
		}
		return nil, err
	}
	return ret, nil
}

package har

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/harconfig/har/config"
	"github.com/viant/harconfig/har/schema"
	"github.com/viant/harconfig/internal/syncmap"
)

// EnvConfig names the environment variable holding the default document
// location.
const EnvConfig = "HARCONFIG_CONFIG"

// DefaultLocation is used when neither an option nor EnvConfig set a location.
const DefaultLocation = "configs/config.yaml"

// Service bundles the current configuration snapshot with the storage and
// logging dependencies used to (re)load it.
type Service struct {
	location string
	fs       afs.Service
	logger   *logrus.Logger
	schema   *schema.Schema
	preset   *config.Config

	current atomic.Pointer[config.Config]
	// snapshots caches every document loaded through the service by location.
	snapshots *syncmap.Map[*config.Config]
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithLocation sets the document location, a local path or afs URL.
func WithLocation(location string) Option {
	return func(s *Service) { s.location = location }
}

// WithConfig uses an already loaded configuration instead of reading one.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) { s.preset = cfg }
}

// WithFS overrides the storage service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithLogger overrides the logger; logrus.StandardLogger() is used otherwise.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithSchema validates documents against a custom schema.
func WithSchema(sch *schema.Schema) Option {
	return func(s *Service) { s.schema = sch }
}

// New constructs a service and loads its configuration. Any load error is
// returned; a Service never exposes a partially loaded document.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{snapshots: syncmap.New[*config.Config]()}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Location returns the document location the service reloads from.
func (s *Service) Location() string { return s.location }

// FS returns the storage service documents are read through.
func (s *Service) FS() afs.Service { return s.fs }

// Config returns the current snapshot. Callers must treat it as read-only;
// it stays valid after a Reload.
func (s *Service) Config() *config.Config { return s.current.Load() }

// Variant returns a variant from the current snapshot.
func (s *Service) Variant(family schema.Family, name string) (*config.VariantConfig, error) {
	return s.Config().Variant(family, name)
}

// Reload re-reads the service location and swaps the current snapshot. On
// error the previous snapshot stays current.
func (s *Service) Reload(ctx context.Context) (*config.Config, error) {
	cfg, err := s.Load(ctx, s.location)
	if err != nil {
		return nil, err
	}
	s.current.Store(cfg)
	s.logger.WithFields(logrus.Fields{"location": s.location}).Info("configuration reloaded")
	return cfg, nil
}

// Load reads and validates a document at location without changing the
// current snapshot, caching the result by location. A failed load evicts the
// cached snapshot of location; errors are returned, not logged above debug.
func (s *Service) Load(ctx context.Context, location string) (*config.Config, error) {
	cfg, err := config.Load(ctx, location, config.WithFS(s.fs), config.WithSchema(s.schema))
	if err != nil {
		s.snapshots.Delete(location)
		s.logger.WithFields(logrus.Fields{"location": location, "err": err}).Debug("failed to load configuration")
		return nil, err
	}
	s.logLoaded(cfg)
	s.snapshots.Set(location, cfg)
	return cfg, nil
}

// Snapshot returns the last document loaded from location.
func (s *Service) Snapshot(location string) (*config.Config, bool) {
	return s.snapshots.Get(location)
}

// Locations returns every location loaded through the service.
func (s *Service) Locations() []string {
	return s.snapshots.Keys()
}

func (s *Service) logLoaded(cfg *config.Config) {
	fields := logrus.Fields{"location": cfg.Location()}
	for _, family := range schema.Families {
		fields[string(family)] = len(cfg.Variants(family))
	}
	s.logger.WithFields(fields).Info("configuration loaded")
	for _, key := range cfg.Unrecognized() {
		s.logger.WithFields(logrus.Fields{"location": cfg.Location(), "key": key}).Debug("ignoring unrecognized section")
	}
}

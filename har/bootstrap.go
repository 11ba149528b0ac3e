package har

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/harconfig/har/schema"
)

// init applies defaults and publishes the first snapshot.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()
	if s.preset != nil {
		s.current.Store(s.preset)
		if s.preset.Location() != "" {
			s.snapshots.Set(s.preset.Location(), s.preset)
		}
		return nil
	}
	cfg, err := s.Load(ctx, s.location)
	if err != nil {
		return err
	}
	s.current.Store(cfg)
	return nil
}

// initDefaults applies fall-back values for dependencies that were not
// supplied through options.
func (s *Service) initDefaults() {
	if s.location == "" {
		s.location = getEnvOrDefault(EnvConfig, DefaultLocation)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	if s.schema == nil {
		s.schema = schema.HAR()
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

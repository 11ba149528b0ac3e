package har

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/harconfig/har/config"
	"github.com/viant/harconfig/har/schema"
)

const document = `
efnet_encoder:
  sa_har:
    nb_units: 128
    n_heads: 4
    dropout_rate: 0.1
    batch_norm: False
efnet_classifier:
  sa_har_classifier:
    dropout_rate: 0.2
extras:
  note: ignored
`

func writeDocument(t *testing.T, dir, content string) string {
	t.Helper()
	location := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestNew(t *testing.T) {
	location := writeDocument(t, t.TempDir(), document)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	svc, err := New(context.Background(), WithLocation(location), WithLogger(logger))
	require.NoError(t, err)

	v, err := svc.Variant(schema.Encoder, "sa_har")
	require.NoError(t, err)
	heads, err := v.Int("n_heads")
	require.NoError(t, err)
	assert.Equal(t, 4, heads)

	assert.Equal(t, location, svc.Location())
	assert.Equal(t, []string{location}, svc.Locations())

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{"configuration loaded", "ignoring unrecognized section"}, messages)
	assert.Equal(t, 1, hook.AllEntries()[0].Data["encoder"])
}

func TestNew_Errors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	_, err := New(context.Background(), WithLocation(filepath.Join(t.TempDir(), "missing.yaml")), WithLogger(logger))
	var notFound *config.NotFoundError
	require.ErrorAs(t, err, &notFound)
	// the caller reports the error; the service stays quiet above debug
	assert.Empty(t, hook.AllEntries())

	logger.SetLevel(logrus.DebugLevel)
	_, err = New(context.Background(), WithLocation(filepath.Join(t.TempDir(), "missing.yaml")), WithLogger(logger))
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	location := writeDocument(t, t.TempDir(), "efnet_encoder:\n")
	_, err = New(context.Background(), WithLocation(location), WithLogger(logger))
	var schemaErr *config.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestNew_EnvLocation(t *testing.T) {
	location := writeDocument(t, t.TempDir(), document)
	t.Setenv(EnvConfig, location)
	logger, _ := test.NewNullLogger()

	svc, err := New(context.Background(), WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, location, svc.Location())
}

func TestNew_WithConfig(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()

	svc, err := New(context.Background(), WithConfig(cfg), WithLogger(logger))
	require.NoError(t, err)
	assert.Same(t, cfg, svc.Config())
	assert.Empty(t, hook.AllEntries())
	assert.Empty(t, svc.Locations())
}

func TestService_Reload(t *testing.T) {
	dir := t.TempDir()
	location := writeDocument(t, dir, document)
	logger, _ := test.NewNullLogger()

	svc, err := New(context.Background(), WithLocation(location), WithLogger(logger))
	require.NoError(t, err)
	before := svc.Config()

	writeDocument(t, dir, strings.Replace(document, "dropout_rate: 0.2", "dropout_rate: 0.3", 1))
	after, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Same(t, after, svc.Config())

	v, _ := before.Variant(schema.Classifier, "sa_har_classifier")
	assert.Equal(t, map[string]interface{}{"dropout_rate": 0.2}, v.Map())
	v, _ = after.Variant(schema.Classifier, "sa_har_classifier")
	assert.Equal(t, map[string]interface{}{"dropout_rate": 0.3}, v.Map())

	snapshot, ok := svc.Snapshot(location)
	require.True(t, ok)
	assert.Same(t, after, snapshot)

	writeDocument(t, dir, "efnet_encoder: [")
	_, err = svc.Reload(context.Background())
	var parseErr *config.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Same(t, after, svc.Config())

	_, ok = svc.Snapshot(location)
	assert.False(t, ok)
	assert.Empty(t, svc.Locations())
}

func TestService_FS(t *testing.T) {
	location := writeDocument(t, t.TempDir(), document)
	logger, _ := test.NewNullLogger()
	fs := afs.New()

	svc, err := New(context.Background(), WithLocation(location), WithLogger(logger), WithFS(fs))
	require.NoError(t, err)
	assert.Same(t, fs, svc.FS())
}

func TestService_ConcurrentReaders(t *testing.T) {
	location := writeDocument(t, t.TempDir(), document)
	logger, _ := test.NewNullLogger()
	svc, err := New(context.Background(), WithLocation(location), WithLogger(logger))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := svc.Variant(schema.Classifier, "sa_har_classifier")
			if !assert.NoError(t, err) {
				return
			}
			derived, err := v.WithOverrides(map[string]interface{}{"dropout_rate": 0.9})
			if assert.NoError(t, err) {
				assert.Equal(t, map[string]interface{}{"dropout_rate": 0.9}, derived.Map())
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Reload(context.Background())
		assert.NoError(t, err)
	}()
	wg.Wait()

	v, err := svc.Variant(schema.Classifier, "sa_har_classifier")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"dropout_rate": 0.2}, v.Map())
}

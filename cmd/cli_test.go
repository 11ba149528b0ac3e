package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/harconfig/har/config"
	"github.com/viant/harconfig/har/schema"
)

var (
	configFixture = filepath.Join("..", "har", "config", "testdata", "config.yaml")
	dataFixture   = filepath.Join("..", "har", "experiment", "testdata", "data.yaml")
)

func runCapture(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	defer func() { stdout = prev }()
	err := run(args)
	return buf.String(), err
}

func TestValidateCmd(t *testing.T) {
	out, err := runCapture(t, "validate", "-f", configFixture)
	require.NoError(t, err)
	assert.Contains(t, out, ": ok")
	assert.Contains(t, out, "encoder: deepconvlstm, deepconvlstm_attn, sa_har")
	assert.Contains(t, out, "classifier: deepconvlstm_attn_classifier, deepconvlstm_classifier, sa_har_classifier")

	_, err = runCapture(t, "validate", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	var notFound *config.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListCmd(t *testing.T) {
	out, err := runCapture(t, "list", "-f", configFixture, "-p", "encoder/")
	require.NoError(t, err)
	assert.Contains(t, out, "sa_har")
	assert.NotContains(t, out, "classifier")
	assert.NotContains(t, out, "disabled")

	out, err = runCapture(t, "list", "-f", configFixture, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "mlp")
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "sa_har_classifier")
}

func TestVariantCmd(t *testing.T) {
	out, err := runCapture(t, "variant", "-f", configFixture, "-F", "encoder", "-n", "sa_har", "--json")
	require.NoError(t, err)
	var actual map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &actual))
	assert.EqualValues(t, map[string]interface{}{"nb_units": 128.0, "n_heads": 4.0, "dropout_rate": 0.1, "batch_norm": false}, actual)

	out, err = runCapture(t, "variant", "-f", configFixture, "-F", "classifier", "-n", "sa_har_classifier")
	require.NoError(t, err)
	assert.Contains(t, out, "classifier/sa_har_classifier:")
	assert.Contains(t, out, `"dropout_rate": (float64) 0.2`)

	_, err = runCapture(t, "variant", "-f", configFixture, "-F", "encoder", "-n", "does_not_exist")
	var unknown *config.UnknownVariantError
	assert.ErrorAs(t, err, &unknown)

	_, err = runCapture(t, "variant", "-f", configFixture, "-F", "decoder", "-n", "sa_har")
	assert.EqualError(t, err, `unknown family "decoder", expected "encoder" or "classifier"`)
}

func TestOverrideCmd(t *testing.T) {
	out, err := runCapture(t, "override", "-f", configFixture, "-F", "classifier", "-n", "sa_har_classifier", "-s", "dropout_rate=0.9", "--json")
	require.NoError(t, err)
	var actual map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &actual))
	assert.EqualValues(t, map[string]interface{}{"dropout_rate": 0.9}, actual)

	_, err = runCapture(t, "override", "-f", configFixture, "-F", "classifier", "-n", "sa_har_classifier", "-s", "hidden_size=3")
	var unknown *config.UnknownParameterError
	assert.ErrorAs(t, err, &unknown)
}

func TestDumpCmd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "dump.yaml")
	out, err := runCapture(t, "dump", "-f", configFixture, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	original, err := config.Load(context.Background(), configFixture)
	require.NoError(t, err)
	dumped, err := config.Load(context.Background(), output)
	require.NoError(t, err)
	assert.Equal(t, original.Map(), dumped.Map())

	out, err = runCapture(t, "dump", "-f", configFixture)
	require.NoError(t, err)
	printed, err := config.Parse([]byte(out))
	require.NoError(t, err)
	v, err := printed.Variant(schema.Encoder, "deepconvlstm")
	require.NoError(t, err)
	filters, _ := v.Int("nb_filters")
	assert.Equal(t, 64, filters)
}

func TestArgsCmd(t *testing.T) {
	out, err := runCapture(t, "args", "-f", configFixture, "--data", dataFixture, "-e", "sa_har", "--train-encoder", "False")
	require.NoError(t, err)

	var actual struct {
		Args struct {
			ClassifierType string `json:"classifierType"`
			Criterion      string `json:"criterion"`
			WindowSize     int    `json:"windowSize"`
			OutputSize     [2]int `json:"outputSize"`
		} `json:"args"`
		Encoder    map[string]interface{} `json:"encoder"`
		Classifier map[string]interface{} `json:"classifier"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &actual))
	assert.Equal(t, "sa_har_classifier", actual.Args.ClassifierType)
	assert.Equal(t, "CrossEntropy", actual.Args.Criterion)
	assert.Equal(t, 168, actual.Args.WindowSize)
	assert.Equal(t, [2]int{3, 78}, actual.Args.OutputSize)
	assert.EqualValues(t, 4, actual.Encoder["n_heads"])
	assert.EqualValues(t, 0.2, actual.Classifier["dropout_rate"])

	_, err = runCapture(t, "args", "-f", configFixture, "--data", dataFixture, "--test", "maybe")
	assert.EqualError(t, err, "--test: boolean value expected")
}

func TestRun_Help(t *testing.T) {
	out, err := runCapture(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "validate")
}

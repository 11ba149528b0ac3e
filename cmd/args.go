package cmd

import (
	"context"

	"github.com/pkg/errors"

	"github.com/viant/harconfig/har/experiment"
	"github.com/viant/harconfig/har/settings"
	"github.com/viant/harconfig/internal/conv"
)

// ArgsCmd resolves the arguments of a training run against the loaded
// configuration and dataset descriptions.
type ArgsCmd struct {
	DataName        string `short:"d" long:"data-name" description:"dataset name" default:"pamap2"`
	DataConfig      string `long:"data" description:"dataset descriptions YAML path or URL" default:"configs/data.yaml"`
	EncoderType     string `short:"e" long:"encoder-type" description:"encoder variant" default:"deepconvlstm"`
	ClassifierType  string `short:"c" long:"classifier-type" description:"classifier variant (auto-selected from the encoder when empty)"`
	TrainEncoder    string `long:"train-encoder" description:"train the encoder" default:"true"`
	TrainClassifier string `long:"train-classifier" description:"train the classifier" default:"true"`
	Test            string `long:"test" description:"perform testing" default:"true"`
	LoadEncoder     string `long:"load-encoder" description:"load a pre-trained encoder" default:"false"`
	EncoderPath     string `long:"encoder-path" description:"pre-trained encoder path"`
	LoadClassifier  string `long:"load-classifier" description:"load a pre-trained classifier" default:"false"`
	ClassifierPath  string `long:"classifier-path" description:"pre-trained classifier path"`
	Subject         int    `long:"specific-subject" description:"test only this subject (1-8), 0 tests all"`

	options *Options
}

func (c *ArgsCmd) Execute(_ []string) error {
	ctx := context.Background()
	args := experiment.DefaultArgs()
	args.DataName = c.DataName
	args.EncoderType = c.EncoderType
	args.ClassifierType = c.ClassifierType
	args.EncoderPath = c.EncoderPath
	args.ClassifierPath = c.ClassifierPath
	if c.Subject != 0 {
		args.SpecificSubject = conv.Pointer(c.Subject)
	}
	for _, flag := range []struct {
		name  string
		value string
		dest  *bool
	}{
		{"train-encoder", c.TrainEncoder, &args.TrainEncoder},
		{"train-classifier", c.TrainClassifier, &args.TrainClassifier},
		{"test", c.Test, &args.Test},
		{"load-encoder", c.LoadEncoder, &args.LoadEncoder},
		{"load-classifier", c.LoadClassifier, &args.LoadClassifier},
	} {
		value, err := settings.ParseBool(flag.value)
		if err != nil {
			return errors.Wrapf(err, "--%s", flag.name)
		}
		*flag.dest = value
	}

	svc, err := c.options.service(ctx)
	if err != nil {
		return err
	}
	datasets, err := experiment.LoadDatasets(ctx, c.DataConfig, experiment.WithFS(svc.FS()))
	if err != nil {
		return err
	}
	exp, err := experiment.Resolve(svc.Config(), datasets, args)
	if err != nil {
		return err
	}
	return printJSON(struct {
		Args       experiment.Args        `json:"args"`
		Encoder    map[string]interface{} `json:"encoder"`
		Classifier map[string]interface{} `json:"classifier"`
	}{exp.Args, exp.Encoder.Map(), exp.Classifier.Map()})
}

package experiment

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/viant/harconfig/har/config"
	"github.com/viant/harconfig/har/schema"
)

// Normalisation types accepted for DatanormType.
const (
	Standardization = "standardization"
	MinMax          = "minmax"
	PerSampleStd    = "per_sample_std"
	PerSampleMinMax = "per_sample_minmax"
)

const (
	datasetsDir = "datasets"
	saveDir     = "saved"
	// subjects in the leave-one-out split
	maxSubject = 8
	// ECDF features are grouped by x, y and z axis
	ecdfAxes = 3
	// sensors contributing to each axis
	ecdfSensorsPerAxis = 3
)

// Args holds the arguments of one run. Fields tagged as derived are filled
// by Resolve.
type Args struct {
	DataName       string `json:"dataName"`
	EncoderType    string `json:"encoderType"`
	ClassifierType string `json:"classifierType"`

	TrainEncoder    bool `json:"trainEncoder"`
	TrainClassifier bool `json:"trainClassifier"`
	Test            bool `json:"test"`

	LoadEncoder    bool   `json:"loadEncoder"`
	EncoderPath    string `json:"encoderPath,omitempty"`
	LoadClassifier bool   `json:"loadClassifier"`
	ClassifierPath string `json:"classifierPath,omitempty"`

	// SpecificSubject restricts testing to one subject (1-8); nil tests all.
	SpecificSubject *int `json:"specificSubject,omitempty"`

	Optimizer            string   `json:"optimizer"`
	Criterion            string   `json:"criterion"`
	ExpMode              string   `json:"expMode"`
	DatanormType         string   `json:"datanormType"`
	TrainEpochs          int      `json:"trainEpochs"`
	LearningRate         float64  `json:"learningRate"`
	LearningRatePatience int      `json:"learningRatePatience"`
	LearningRateFactor   float64  `json:"learningRateFactor"`
	EarlyStopPatience    int      `json:"earlyStopPatience"`
	BatchSize            int      `json:"batchSize"`
	Shuffle              bool     `json:"shuffle"`
	DropLast             bool     `json:"dropLast"`
	TrainValiQuote       float64  `json:"trainValiQuote"`
	ClassifierLR         float64  `json:"classifierLR"`
	ClassifierEpochs     int      `json:"classifierEpochs"`
	ClassifierBatchSize  int      `json:"classifierBatchSize"`
	FreezeEncoder        bool     `json:"freezeEncoder"`
	NECDFPoints          int      `json:"nEcdfPoints"`
	SensorSelect         []string `json:"sensorSelect"`
	Seed                 int      `json:"seed"`
	Filtering            bool     `json:"filtering"`
	Freq1                float64  `json:"freq1"`
	Freq2                float64  `json:"freq2"`

	// derived
	DataPath           string  `json:"dataPath"`
	SavePath           string  `json:"savePath"`
	EncoderSavePath    string  `json:"encoderSavePath"`
	ClassifierSavePath string  `json:"classifierSavePath"`
	ResultsSavePath    string  `json:"resultsSavePath"`
	WindowSize         int     `json:"windowSize"`
	InputLength        int     `json:"inputLength"`
	InputChannels      int     `json:"inputChannels"`
	SamplingFreq       float64 `json:"samplingFreq"`
	NumClasses         int     `json:"numClasses"`
	OutputSize         [2]int  `json:"outputSize"`
	PklSavePath        string  `json:"pklSavePath"`
}

// DefaultArgs returns the stock training setup.
func DefaultArgs() Args {
	return Args{
		DataName:             "pamap2",
		EncoderType:          "deepconvlstm",
		ClassifierType:       "deepconvlstm_classifier",
		TrainEncoder:         true,
		TrainClassifier:      true,
		Test:                 true,
		Optimizer:            "Adam",
		ExpMode:              "LOCV",
		DatanormType:         Standardization,
		TrainEpochs:          1,
		LearningRate:         0.0005,
		LearningRatePatience: 7,
		LearningRateFactor:   0.1,
		EarlyStopPatience:    20,
		BatchSize:            128,
		Shuffle:              true,
		TrainValiQuote:       0.90,
		ClassifierLR:         0.001,
		ClassifierEpochs:     1,
		ClassifierBatchSize:  128,
		FreezeEncoder:        true,
		NECDFPoints:          25,
		SensorSelect:         []string{"acc"},
		Seed:                 42,
		Filtering:            true,
		Freq1:                0.001,
		Freq2:                25.0,
	}
}

// ClassifierFor returns the classifier paired with an encoder type.
func ClassifierFor(encoderType string) string {
	return encoderType + "_classifier"
}

// ECDFShape returns the (axes, features) shape of ECDF features built from
// nPoints quantiles plus the mean of each sensor.
func ECDFShape(nPoints int) [2]int {
	return [2]int{ecdfAxes, (nPoints + 1) * ecdfSensorsPerAxis}
}

// Experiment is a resolved run: arguments plus the selected presets.
type Experiment struct {
	Args       Args
	Dataset    *Dataset
	Encoder    *config.VariantConfig
	Classifier *config.VariantConfig
}

// Resolve validates args against the loaded configuration and datasets and
// fills the derived fields. args is passed by value and is not modified.
func Resolve(cfg *config.Config, datasets Datasets, args Args) (*Experiment, error) {
	dataset, err := datasets.Lookup(args.DataName)
	if err != nil {
		return nil, err
	}
	if args.ClassifierType == "" {
		args.ClassifierType = ClassifierFor(args.EncoderType)
	}
	encoder, err := cfg.Variant(schema.Encoder, args.EncoderType)
	if err != nil {
		return nil, err
	}
	classifier, err := cfg.Variant(schema.Classifier, args.ClassifierType)
	if err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	if args.Criterion == "" {
		args.Criterion = "CrossEntropy"
		if args.TrainEncoder {
			args.Criterion = "MSELoss"
		}
	}
	args.SensorSelect = append([]string{}, args.SensorSelect...)
	if args.SpecificSubject != nil {
		subject := *args.SpecificSubject
		args.SpecificSubject = &subject
	}
	args.DataPath = filepath.Join(datasetsDir, dataset.Filename)
	args.SavePath = saveDir
	args.EncoderSavePath = filepath.Join(saveDir, "encoders")
	args.ClassifierSavePath = filepath.Join(saveDir, "classifiers")
	args.ResultsSavePath = filepath.Join(saveDir, "results")
	args.WindowSize = dataset.WindowSize()
	args.InputLength = args.WindowSize
	args.InputChannels = dataset.NumChannels
	args.SamplingFreq = dataset.SamplingFreq
	args.NumClasses = dataset.NumClasses
	args.OutputSize = ECDFShape(args.NECDFPoints)
	args.PklSavePath = filepath.Join(datasetsDir, args.DataName, "window_size_"+strconv.Itoa(args.WindowSize))

	return &Experiment{Args: args, Dataset: dataset, Encoder: encoder, Classifier: classifier}, nil
}

func (a *Args) validate() error {
	switch a.DatanormType {
	case Standardization, MinMax, PerSampleStd, PerSampleMinMax:
	default:
		return &config.SchemaError{Path: "args.datanorm_type", Reason: fmt.Sprintf("normalize method %q not implemented", a.DatanormType)}
	}
	if a.SpecificSubject != nil && (*a.SpecificSubject < 1 || *a.SpecificSubject > maxSubject) {
		return &config.SchemaError{Path: "args.specific_subject", Reason: fmt.Sprintf("subject %d outside 1-%d", *a.SpecificSubject, maxSubject)}
	}
	if a.LoadEncoder && a.EncoderPath == "" {
		return &config.SchemaError{Path: "args.encoder_path", Reason: "required when loading an encoder"}
	}
	if a.LoadClassifier && a.ClassifierPath == "" {
		return &config.SchemaError{Path: "args.classifier_path", Reason: "required when loading a classifier"}
	}
	if a.NECDFPoints < 1 {
		return &config.SchemaError{Path: "args.n_ecdf_points", Reason: "must be positive"}
	}
	if a.TrainValiQuote <= 0 || a.TrainValiQuote > 1 {
		return &config.SchemaError{Path: "args.train_vali_quote", Reason: "must be in (0,1]"}
	}
	if a.BatchSize < 1 || a.ClassifierBatchSize < 1 {
		return &config.SchemaError{Path: "args.batch_size", Reason: "must be positive"}
	}
	return nil
}

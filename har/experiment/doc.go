// Package experiment resolves the arguments of a HAR training run: dataset
// geometry from data.yaml, training defaults and the encoder/classifier
// variants selected from a loaded configuration.
package experiment

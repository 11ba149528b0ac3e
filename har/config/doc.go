// Package config loads a HAR model configuration document, validates it
// against the variant schema and exposes immutable, typed variant presets.
//
// A document has two sections, efnet_encoder and efnet_classifier, each
// mapping variant names to flat parameter mappings:
//
//	efnet_encoder:
//	  sa_har:
//	    nb_units: 128
//	    n_heads: 4
//	    dropout_rate: 0.1
//	    batch_norm: False
//	efnet_classifier:
//	  sa_har_classifier:
//	    dropout_rate: 0.2
//
// A loaded Config is never modified; WithOverrides derives new values.
package config

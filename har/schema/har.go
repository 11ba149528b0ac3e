package schema

func bound(v float64) *float64 { return &v }

var (
	zero     = bound(0)
	one      = bound(1)
	positive = bound(1)
)

func intParam(name string) Parameter {
	return Parameter{Name: name, Kind: Int, Min: positive}
}

func probParam(name string) Parameter {
	return Parameter{Name: name, Kind: Float, Min: zero, Max: one}
}

func boolParam(name string) Parameter {
	return Parameter{Name: name, Kind: Bool}
}

func deepConvLSTMParameters() []Parameter {
	return []Parameter{
		intParam("nb_conv_blocks"),
		intParam("nb_filters"),
		intParam("filter_width"),
		boolParam("batch_norm"),
		intParam("nb_layers_lstm"),
		probParam("drop_prob"),
		intParam("nb_units_lstm"),
	}
}

// HAR returns the schema of the efnet encoder and classifier presets.
func HAR() *Schema {
	return New(
		&Variant{Family: Encoder, Name: "deepconvlstm", Parameters: deepConvLSTMParameters()},
		&Variant{Family: Encoder, Name: "deepconvlstm_attn", Parameters: append(deepConvLSTMParameters(), intParam("dilation"))},
		&Variant{Family: Encoder, Name: "sa_har", Parameters: []Parameter{
			intParam("nb_units"),
			intParam("n_heads"),
			probParam("dropout_rate"),
			boolParam("batch_norm"),
		}},
		&Variant{Family: Encoder, Name: "cnn", Disabled: true, Parameters: []Parameter{
			intParam("nb_conv_blocks"),
			intParam("nb_filters"),
			intParam("filter_width"),
			boolParam("batch_norm"),
			probParam("drop_prob"),
		}},
		&Variant{Family: Encoder, Name: "lstm", Disabled: true, Parameters: []Parameter{
			intParam("nb_layers_lstm"),
			intParam("nb_units_lstm"),
			boolParam("bidirectional"),
			probParam("drop_prob"),
		}},
		&Variant{Family: Encoder, Name: "mlp", Disabled: true, Parameters: []Parameter{
			{Name: "hidden_sizes", Kind: IntList, Min: positive},
			probParam("dropout_rate"),
			boolParam("batch_norm"),
		}},

		&Variant{Family: Classifier, Name: "deepconvlstm_classifier", Parameters: []Parameter{
			probParam("dropout_rate"),
		}},
		&Variant{Family: Classifier, Name: "deepconvlstm_attn_classifier", Parameters: []Parameter{
			probParam("dropout_rate"),
			intParam("hidden_size"),
		}},
		&Variant{Family: Classifier, Name: "sa_har_classifier", Parameters: []Parameter{
			probParam("dropout_rate"),
		}},
	)
}

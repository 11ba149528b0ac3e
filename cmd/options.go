package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"model configuration YAML path or URL (default $HARCONFIG_CONFIG or configs/config.yaml)"`

	Validate *ValidateCmd `command:"validate" description:"Load and validate the configuration"`
	List     *ListCmd     `command:"list"     description:"List encoder and classifier variants"`
	Variant  *VariantCmd  `command:"variant"  description:"Show the parameters of one variant"`
	Override *OverrideCmd `command:"override" description:"Show a variant with overridden parameters"`
	Dump     *DumpCmd     `command:"dump"     description:"Re-serialize the validated configuration"`
	Args     *ArgsCmd     `command:"args"     description:"Resolve the arguments of a training run"`
}

// NewOptions instantiates every sub-command with a back reference to the
// root so that commands can reach the global options once go-flags has
// populated them.
func NewOptions() *Options {
	o := &Options{}
	o.Validate = &ValidateCmd{options: o}
	o.List = &ListCmd{options: o}
	o.Variant = &VariantCmd{options: o}
	o.Override = &OverrideCmd{options: o}
	o.Dump = &DumpCmd{options: o}
	o.Args = &ArgsCmd{options: o}
	return o
}

package cmd

import (
	"context"

	"github.com/viant/harconfig/har/settings"
)

// OverrideCmd derives a variant with parameters replaced from settings.
type OverrideCmd struct {
	Family   string `short:"F" long:"family" description:"encoder or classifier" required:"yes"`
	Name     string `short:"n" long:"name" description:"variant name" required:"yes"`
	Settings string `short:"s" long:"set" description:"overrides as \"param=value;param2=value2\" or \"file:path\"" required:"yes"`
	JSON     bool   `long:"json" description:"print result as JSON"`

	options *Options
}

func (c *OverrideCmd) Execute(_ []string) error {
	ctx := context.Background()
	svc, variant, err := lookupVariant(ctx, c.options, c.Family, c.Name)
	if err != nil {
		return err
	}
	derived, err := settings.Apply(ctx, variant, c.Settings, settings.WithFS(svc.FS()))
	if err != nil {
		return err
	}
	return printVariant(derived, c.JSON)
}

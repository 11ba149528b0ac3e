package cmd

import (
	"context"
	"fmt"

	"github.com/viant/harconfig/har"
	"github.com/viant/harconfig/har/config"
	"github.com/viant/harconfig/har/settings"
)

// VariantCmd prints the parameters of one variant.
type VariantCmd struct {
	Family string `short:"F" long:"family" description:"encoder or classifier" required:"yes"`
	Name   string `short:"n" long:"name" description:"variant name" required:"yes"`
	JSON   bool   `long:"json" description:"print result as JSON"`

	options *Options
}

func (c *VariantCmd) Execute(_ []string) error {
	_, variant, err := lookupVariant(context.Background(), c.options, c.Family, c.Name)
	if err != nil {
		return err
	}
	return printVariant(variant, c.JSON)
}

func lookupVariant(ctx context.Context, options *Options, familyName, name string) (*har.Service, *config.VariantConfig, error) {
	family, err := parseFamily(familyName)
	if err != nil {
		return nil, nil, err
	}
	svc, err := options.service(ctx)
	if err != nil {
		return nil, nil, err
	}
	variant, err := svc.Variant(family, name)
	if err != nil {
		return nil, nil, err
	}
	return svc, variant, nil
}

func printVariant(variant *config.VariantConfig, asJSON bool) error {
	if asJSON {
		return printJSON(variant.Map())
	}
	fmt.Fprintf(stdout, "%s/%s:\n%s\n", variant.Family(), variant.Name(), settings.Sprint(variant))
	return nil
}

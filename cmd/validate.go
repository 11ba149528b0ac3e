package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/harconfig/har/schema"
)

// ValidateCmd loads the configuration and prints the variants it defines.
type ValidateCmd struct {
	options *Options
}

func (c *ValidateCmd) Execute(_ []string) error {
	svc, err := c.options.service(context.Background())
	if err != nil {
		return err
	}
	cfg := svc.Config()
	fmt.Fprintf(stdout, "%s: ok\n", svc.Location())
	for _, family := range schema.Families {
		fmt.Fprintf(stdout, "  %s: %s\n", family, strings.Join(cfg.Variants(family), ", "))
	}
	return nil
}

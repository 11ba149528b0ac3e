package cmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/viant/harconfig/har/config"
)

// DumpCmd prints or uploads the validated configuration as YAML.
type DumpCmd struct {
	Output string `short:"o" long:"output" description:"destination path or URL (stdout if empty)"`

	options *Options
}

func (c *DumpCmd) Execute(_ []string) error {
	ctx := context.Background()
	svc, err := c.options.service(ctx)
	if err != nil {
		return err
	}
	data, err := svc.Config().Marshal()
	if err != nil {
		return err
	}
	if c.Output == "" {
		_, err = stdout.Write(data)
		return err
	}
	URL, err := config.NormalizeURL(c.Output)
	if err != nil {
		return err
	}
	if err = svc.FS().Upload(ctx, URL, 0o644, bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, "failed to write %q", c.Output)
	}
	fmt.Fprintf(stdout, "wrote %s\n", c.Output)
	return nil
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/viant/harconfig/har"
	"github.com/viant/harconfig/har/schema"
)

// service loads the configuration named by the global -f/--config option.
func (o *Options) service(ctx context.Context) (*har.Service, error) {
	var opts []har.Option
	if o.Config != "" {
		opts = append(opts, har.WithLocation(o.Config))
	}
	return har.New(ctx, opts...)
}

func parseFamily(name string) (schema.Family, error) {
	family := schema.Family(name)
	if !family.Valid() {
		return "", errors.Errorf("unknown family %q, expected %q or %q", name, schema.Encoder, schema.Classifier)
	}
	return family, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}

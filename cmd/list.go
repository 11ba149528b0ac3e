package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/viant/harconfig/har/matcher"
	"github.com/viant/harconfig/har/schema"
)

var (
	familyStyle   = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true)
)

// ListCmd prints every variant in `family/variant` form.
type ListCmd struct {
	Pattern string `short:"p" long:"pattern" description:"family/variant prefix, * for all" default:"*"`
	All     bool   `short:"a" long:"all" description:"include disabled schema variants missing from the document"`

	options *Options
}

func (c *ListCmd) Execute(_ []string) error {
	svc, err := c.options.service(context.Background())
	if err != nil {
		return err
	}
	cfg := svc.Config()
	for _, family := range schema.Families {
		present := make(map[string]bool)
		for _, name := range cfg.Variants(family) {
			present[name] = true
		}
		var lines []string
		for _, variant := range cfg.Schema().Variants(family, c.All) {
			qualified := string(family) + "/" + variant.Name
			if !matcher.Match(c.Pattern, qualified) {
				continue
			}
			switch {
			case present[variant.Name]:
				lines = append(lines, fmt.Sprintf("  %s\t%d params", variant.Name, len(variant.Parameters)))
			case c.All:
				lines = append(lines, disabledStyle.Render(fmt.Sprintf("  %s\tdisabled", variant.Name)))
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintln(stdout, familyStyle.Render(string(family)))
		for _, line := range lines {
			fmt.Fprintln(stdout, line)
		}
	}
	return nil
}

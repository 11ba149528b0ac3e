package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

// stdout receives command output; tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// Run is the entry point for the CLI.  The function is separated from the
// main package to keep the commands usable from tests as well.
func Run(args []string) {
	if err := run(args); err != nil {
		log.WithFields(log.Fields{"args": strings.Join(args, " "), "err": err}).Fatal("command failed")
	}
}

func run(args []string) error {
	parser := flags.NewParser(NewOptions(), flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			_, _ = io.WriteString(stdout, flagsErr.Message+"\n")
			return nil
		}
		return err
	}
	return nil
}

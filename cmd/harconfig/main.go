package main

import (
	"os"

	"github.com/viant/harconfig/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}

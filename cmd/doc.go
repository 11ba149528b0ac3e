// Package cmd implements the sub-commands of the harconfig command-line
// interface.  Each file registers a single sub-command (validate, list,
// variant, override, dump, args).  Loading the configuration shared by the
// commands lives in shared.go.
package cmd

// Package conv provides small helpers to coerce decoded document values
// (YAML/JSON scalars and sequences) into the canonical Go types used by
// variant parameters.
package conv

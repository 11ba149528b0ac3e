// Package schema declares the model families, variants and parameter kinds a
// HAR configuration document is validated against.
package schema

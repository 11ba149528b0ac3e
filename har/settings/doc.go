// Package settings parses command-line override strings of the form
// "param1=value1;param2=value2" into typed overrides for a variant.
package settings

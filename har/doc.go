// Package har bundles a loaded HAR model configuration with its storage and
// logging dependencies. A Service is built once at startup and handed to
// consumers explicitly; it holds the current immutable snapshot and swaps it
// on Reload.
package har

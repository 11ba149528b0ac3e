// Package syncmap offers a lightweight, generic, concurrency-safe map keyed by
// string, used to cache configuration snapshots per location.
package syncmap

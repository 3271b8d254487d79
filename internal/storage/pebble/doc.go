// Package pebblestore wraps Pebble with the fsync policy and helpers used
// by the log store and metadata store.
package pebblestore

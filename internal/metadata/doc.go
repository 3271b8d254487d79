// Package metadata persists subscription definitions on the shared KV.
package metadata

// Package runtime assembles the storage, log, metadata, and subscription
// layers into one broker-local instance.
package runtime

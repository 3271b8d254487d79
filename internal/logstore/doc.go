// Package logstore implements the append-only, batch-per-LSN log the
// delivery engine reads from. One Append call produces one LSN; all
// records of the call share it and are addressed by their index within
// the batch. Checkpointed readers resume from durable per-subscription
// checkpoints and report trimmed prefixes as gaps.
package logstore

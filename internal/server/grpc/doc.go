// Package grpcserver exposes the HStream API: stream admin, subscription
// admin, and the StreamingFetch delivery sessions.
package grpcserver

package subscription

import "errors"

// Error kinds surfaced by the delivery engine. They are mapped to RPC
// status codes only at the transport boundary.
var (
	// ErrSubscriptionNotFound reports a lookup of an absent or deleted
	// subscription id.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrSubscriptionExists reports a create against a persisted id.
	ErrSubscriptionExists = errors.New("subscription already exists")
	// ErrSubscriptionRemoved reports a mid-session observation that the
	// subscription's runtime has been deleted.
	ErrSubscriptionRemoved = errors.New("subscription has been removed")
	// ErrStreamNotFound reports a create against a non-existent stream.
	ErrStreamNotFound = errors.New("stream not found")
	// ErrConsumerExists reports an attach under a consumer name already in
	// use on the subscription.
	ErrConsumerExists = errors.New("consumer name already in use")
)

// Package subscription implements the per-subscription delivery engine:
// a sparse ack range set over record ids, a delivery window that advances
// with the contiguous acked prefix and checkpoints each advancement,
// round-robin fan-out across attached consumers, timed re-delivery of
// unacked records, and a process-wide registry that owns every runtime.
//
// Delivery is at-least-once: a record dispatched to some consumer is
// either acked or re-dispatched after the subscription's ack timeout.
package subscription

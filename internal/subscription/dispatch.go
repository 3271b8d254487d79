package subscription

import "sort"

// DeliveredRecord pairs a record id with its payload for delivery.
type DeliveredRecord struct {
	ID      RecordID
	Payload []byte
}

// Sender pushes one response worth of records to a consumer. A failed
// send means the connection is broken; the sender is then discarded.
// Implementations must serialize writes to the underlying transport.
type Sender interface {
	Send(records []DeliveredRecord) error
}

// sortedNames returns consumer names in canonical (sorted) order.
func sortedNames(senders map[string]Sender) []string {
	names := make([]string, 0, len(senders))
	for name := range senders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// distribute assigns records round-robin across the senders in canonical
// order: record i goes to consumer i mod M, one Send per consumer. A
// failed sender is reported for removal and never retried here; its
// records become eligible for resend like any other unacked id.
func distribute(records []DeliveredRecord, senders map[string]Sender) (failed []string) {
	if len(records) == 0 || len(senders) == 0 {
		return nil
	}
	names := sortedNames(senders)
	parts := make([][]DeliveredRecord, len(names))
	for i, rec := range records {
		slot := i % len(names)
		parts[slot] = append(parts[slot], rec)
	}
	for i, name := range names {
		if len(parts[i]) == 0 {
			continue
		}
		if err := senders[name].Send(parts[i]); err != nil {
			failed = append(failed, name)
		}
	}
	return failed
}

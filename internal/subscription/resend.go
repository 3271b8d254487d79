package subscription

import (
	logpkg "github.com/hstreamdb/hdelivery/pkg/log"
)

// resendOnce re-delivers whichever of ids are still unacked. The ack set
// is re-consulted on every tick, so acks that arrived since the records
// were dispatched silently shrink the resend set. Returns true when the
// same ids should be rescheduled after another ack timeout.
func (r *Runtime) resendOnce(ids []RecordID) bool {
	var unacked []RecordID
	var names []string
	var senders []Sender

	r.mu.Lock()
	for {
		if !r.valid {
			r.mu.Unlock()
			return false
		}
		unacked = unacked[:0]
		for _, id := range ids {
			if id.Less(r.lowerBound) || r.acked.Covers(id) {
				continue
			}
			unacked = append(unacked, id)
		}
		if len(unacked) == 0 {
			r.mu.Unlock()
			return false
		}
		if len(r.senders) > 0 {
			break
		}
		// Park until a consumer attaches, then re-evaluate: acks may have
		// been folded in the meantime.
		ch := make(chan struct{})
		r.signals = append(r.signals, ch)
		r.mu.Unlock()
		<-ch
		r.mu.Lock()
	}
	names = sortedNames(r.senders)
	senders = make([]Sender, len(names))
	for i, name := range names {
		senders[i] = r.senders[name]
	}
	r.mu.Unlock()

	// Reread and send outside the lock. A sender that fails mid-call is
	// skipped for the rest of this call via the alive bitmap.
	alive := make([]bool, len(senders))
	for i := range alive {
		alive[i] = true
	}
	var failed []string
	slot := 0
	for _, id := range unacked {
		records, err := r.log.ReadBatch(id.BatchID)
		if err != nil {
			r.logger.Warn("subscription.resend.reread_failed",
				logpkg.Str("subscription", r.id),
				logpkg.Str("record", id.String()),
				logpkg.Err(err),
			)
			continue
		}
		if int(id.BatchIndex) >= len(records) {
			r.logger.Warn("subscription.resend.index_out_of_batch",
				logpkg.Str("subscription", r.id),
				logpkg.Str("record", id.String()),
				logpkg.Int("batch_size", len(records)),
			)
			continue
		}
		target := -1
		for probe := 0; probe < len(senders); probe++ {
			j := (slot + probe) % len(senders)
			if alive[j] {
				target = j
				break
			}
		}
		if target < 0 {
			break
		}
		slot = (target + 1) % len(senders)
		rec := DeliveredRecord{ID: id, Payload: records[id.BatchIndex]}
		if err := senders[target].Send([]DeliveredRecord{rec}); err != nil {
			alive[target] = false
			failed = append(failed, names[target])
		}
	}

	if len(failed) > 0 {
		r.mu.Lock()
		for _, name := range failed {
			delete(r.senders, name)
		}
		r.mu.Unlock()
		for _, name := range failed {
			r.logger.Warn("subscription.consumer.send_failed",
				logpkg.Str("subscription", r.id),
				logpkg.Str("consumer", name),
			)
		}
	}
	r.logger.Debug("subscription.resend",
		logpkg.Str("subscription", r.id),
		logpkg.Int("n", len(unacked)),
	)
	return true
}

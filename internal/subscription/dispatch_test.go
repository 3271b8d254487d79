package subscription

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

// captureSender records everything sent to it; it can be told to fail.
type captureSender struct {
	mu      sync.Mutex
	batches [][]DeliveredRecord
	fail    bool
}

func (s *captureSender) Send(records []DeliveredRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("broken pipe")
	}
	batch := make([]DeliveredRecord, len(records))
	copy(batch, records)
	s.batches = append(s.batches, batch)
	return nil
}

func (s *captureSender) ids() []RecordID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []RecordID
	for _, batch := range s.batches {
		for _, rec := range batch {
			out = append(out, rec.ID)
		}
	}
	return out
}

func (s *captureSender) setFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

func recs(n int) []DeliveredRecord {
	out := make([]DeliveredRecord, n)
	for i := range out {
		out[i] = DeliveredRecord{
			ID:      RecordID{BatchID: 1, BatchIndex: uint32(i)},
			Payload: []byte(fmt.Sprintf("r%d", i)),
		}
	}
	return out
}

func sameIDs(got []RecordID, want ...RecordID) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestDistributeRoundRobin(t *testing.T) {
	a := &captureSender{}
	b := &captureSender{}
	senders := map[string]Sender{"a": a, "b": b}

	failed := distribute(recs(4), senders)
	if len(failed) != 0 {
		t.Fatalf("unexpected failures: %v", failed)
	}
	if !sameIDs(a.ids(), RecordID{1, 0}, RecordID{1, 2}) {
		t.Fatalf("a received %v", a.ids())
	}
	if !sameIDs(b.ids(), RecordID{1, 1}, RecordID{1, 3}) {
		t.Fatalf("b received %v", b.ids())
	}
}

func TestDistributeSingleConsumerGetsAll(t *testing.T) {
	only := &captureSender{}
	failed := distribute(recs(3), map[string]Sender{"only": only})
	if len(failed) != 0 {
		t.Fatalf("unexpected failures: %v", failed)
	}
	if !sameIDs(only.ids(), RecordID{1, 0}, RecordID{1, 1}, RecordID{1, 2}) {
		t.Fatalf("received %v", only.ids())
	}
}

func TestDistributeReportsFailedSender(t *testing.T) {
	a := &captureSender{}
	b := &captureSender{fail: true}
	failed := distribute(recs(4), map[string]Sender{"a": a, "b": b})
	if len(failed) != 1 || failed[0] != "b" {
		t.Fatalf("failed = %v, want [b]", failed)
	}
	// a's share is unaffected by b's failure
	if !sameIDs(a.ids(), RecordID{1, 0}, RecordID{1, 2}) {
		t.Fatalf("a received %v", a.ids())
	}
}

func TestDistributeNoRecordsNoSenders(t *testing.T) {
	if failed := distribute(nil, map[string]Sender{"a": &captureSender{}}); failed != nil {
		t.Fatalf("failed = %v", failed)
	}
	if failed := distribute(recs(2), map[string]Sender{}); failed != nil {
		t.Fatalf("failed = %v", failed)
	}
}

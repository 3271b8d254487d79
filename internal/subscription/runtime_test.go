package subscription

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hstreamdb/hdelivery/internal/logstore"
	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
)

type runtimeFixture struct {
	rt        *Runtime
	log       *logstore.Log
	mu        sync.Mutex
	scheduled [][]RecordID
}

func (f *runtimeFixture) lastScheduled() []RecordID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.scheduled) == 0 {
		return nil
	}
	return f.scheduled[len(f.scheduled)-1]
}

// newRuntimeFixture builds a runtime over a real log without starting the
// dispatch loop; tests drive dispatchOnce and resendOnce directly.
func newRuntimeFixture(t *testing.T) *runtimeFixture {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	log, err := logstore.OpenLog(db, "orders")
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	reader, err := logstore.OpenCheckpointedReader(log, "sub-1", 1)
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}
	f := &runtimeFixture{log: log}
	f.rt = newRuntime(runtimeConfig{
		id:         "sub-1",
		streamName: "orders",
		ackTimeout: 50 * time.Millisecond,
		log:        log,
		reader:     reader,
		start:      RecordID{BatchID: 1},
		tick:       5 * time.Millisecond,
		schedule: func(ids []RecordID, _ time.Duration) {
			f.mu.Lock()
			f.scheduled = append(f.scheduled, ids)
			f.mu.Unlock()
		},
	})
	return f
}

func mustAppend(t *testing.T, log *logstore.Log, payloads ...string) uint64 {
	t.Helper()
	records := make([][]byte, len(payloads))
	for i, p := range payloads {
		records[i] = []byte(p)
	}
	lsn, err := log.Append(context.Background(), records)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	return lsn
}

func TestDispatchRoundRobinAcrossConsumers(t *testing.T) {
	f := newRuntimeFixture(t)
	mustAppend(t, f.log, "r0", "r1", "r2", "r3")

	a := &captureSender{}
	b := &captureSender{}
	if err := f.rt.AttachConsumer("a", a); err != nil {
		t.Fatalf("attach a: %v", err)
	}
	if err := f.rt.AttachConsumer("b", b); err != nil {
		t.Fatalf("attach b: %v", err)
	}

	if !f.rt.dispatchOnce() {
		t.Fatalf("dispatchOnce reported deleted runtime")
	}
	if !sameIDs(a.ids(), RecordID{1, 0}, RecordID{1, 2}) {
		t.Fatalf("a received %v", a.ids())
	}
	if !sameIDs(b.ids(), RecordID{1, 1}, RecordID{1, 3}) {
		t.Fatalf("b received %v", b.ids())
	}
	if got := f.lastScheduled(); !sameIDs(got, RecordID{1, 0}, RecordID{1, 1}, RecordID{1, 2}, RecordID{1, 3}) {
		t.Fatalf("resend scheduled for %v", got)
	}
}

func TestDuplicateConsumerNameRejected(t *testing.T) {
	f := newRuntimeFixture(t)
	if err := f.rt.AttachConsumer("c1", &captureSender{}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := f.rt.AttachConsumer("c1", &captureSender{}); err != ErrConsumerExists {
		t.Fatalf("want ErrConsumerExists, got %v", err)
	}
}

func TestAckAdvanceWritesCheckpoint(t *testing.T) {
	f := newRuntimeFixture(t)
	lsn1 := mustAppend(t, f.log, "a", "b")
	lsn2 := mustAppend(t, f.log, "c")

	c1 := &captureSender{}
	if err := f.rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}
	f.rt.dispatchOnce()

	ctx := context.Background()
	if err := f.rt.AckBatch(ctx, []RecordID{{BatchID: lsn1, BatchIndex: 0}, {BatchID: lsn1, BatchIndex: 1}}); err != nil {
		t.Fatalf("ack: %v", err)
	}
	if got, ok := f.log.GetCheckpoint("sub-1"); !ok || got != lsn1 {
		t.Fatalf("checkpoint = %d ok=%v, want %d", got, ok, lsn1)
	}
	if err := f.rt.AckBatch(ctx, []RecordID{{BatchID: lsn2, BatchIndex: 0}}); err != nil {
		t.Fatalf("ack: %v", err)
	}
	if got, ok := f.log.GetCheckpoint("sub-1"); !ok || got != lsn2 {
		t.Fatalf("checkpoint = %d ok=%v, want %d", got, ok, lsn2)
	}
	if got := f.rt.WindowLowerBound(); got != (RecordID{BatchID: lsn2 + 1}) {
		t.Fatalf("lower bound = %v", got)
	}

	// re-acking already-checkpointed ids is a no-op
	if err := f.rt.AckBatch(ctx, []RecordID{{BatchID: lsn1, BatchIndex: 0}}); err != nil {
		t.Fatalf("stale ack: %v", err)
	}
	if got, _ := f.log.GetCheckpoint("sub-1"); got != lsn2 {
		t.Fatalf("checkpoint regressed to %d", got)
	}
}

func TestWindowMonotonicUnderOutOfOrderAcks(t *testing.T) {
	f := newRuntimeFixture(t)
	lsn := mustAppend(t, f.log, "a", "b", "c")
	c1 := &captureSender{}
	if err := f.rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}
	f.rt.dispatchOnce()

	ctx := context.Background()
	prev := f.rt.WindowLowerBound()
	for _, id := range []RecordID{{lsn, 2}, {lsn, 0}, {lsn, 1}} {
		if err := f.rt.AckBatch(ctx, []RecordID{id}); err != nil {
			t.Fatalf("ack %v: %v", id, err)
		}
		cur := f.rt.WindowLowerBound()
		if cur.Less(prev) {
			t.Fatalf("lower bound regressed from %v to %v", prev, cur)
		}
		prev = cur
	}
	if got, ok := f.log.GetCheckpoint("sub-1"); !ok || got != lsn {
		t.Fatalf("checkpoint = %d ok=%v, want %d", got, ok, lsn)
	}
}

func TestResendOnTimeout(t *testing.T) {
	f := newRuntimeFixture(t)
	lsn := mustAppend(t, f.log, "r0", "r1")
	c1 := &captureSender{}
	if err := f.rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}
	f.rt.dispatchOnce()
	ids := f.lastScheduled()
	if !sameIDs(ids, RecordID{lsn, 0}, RecordID{lsn, 1}) {
		t.Fatalf("scheduled %v", ids)
	}

	ctx := context.Background()
	if err := f.rt.AckBatch(ctx, []RecordID{{BatchID: lsn, BatchIndex: 0}}); err != nil {
		t.Fatalf("ack: %v", err)
	}

	if !f.rt.resendOnce(ids) {
		t.Fatalf("resend with one unacked id did not reschedule")
	}
	if !sameIDs(c1.ids(), RecordID{lsn, 0}, RecordID{lsn, 1}, RecordID{lsn, 1}) {
		t.Fatalf("c1 received %v", c1.ids())
	}

	if err := f.rt.AckBatch(ctx, []RecordID{{BatchID: lsn, BatchIndex: 1}}); err != nil {
		t.Fatalf("ack: %v", err)
	}
	if f.rt.resendOnce(ids) {
		t.Fatalf("resend continued after all ids acked")
	}
	if !sameIDs(c1.ids(), RecordID{lsn, 0}, RecordID{lsn, 1}, RecordID{lsn, 1}) {
		t.Fatalf("extra delivery after full ack: %v", c1.ids())
	}
}

func TestConsumerDiesMidDispatch(t *testing.T) {
	f := newRuntimeFixture(t)
	lsn := mustAppend(t, f.log, "r0", "r1", "r2", "r3")
	a := &captureSender{}
	b := &captureSender{fail: true}
	if err := f.rt.AttachConsumer("a", a); err != nil {
		t.Fatalf("attach a: %v", err)
	}
	if err := f.rt.AttachConsumer("b", b); err != nil {
		t.Fatalf("attach b: %v", err)
	}

	f.rt.dispatchOnce()
	if n := f.rt.NumConsumers(); n != 1 {
		t.Fatalf("consumers after failed send = %d, want 1", n)
	}

	// a processes its share; b's records are re-delivered to a
	ctx := context.Background()
	if err := f.rt.AckBatch(ctx, []RecordID{{lsn, 0}, {lsn, 2}}); err != nil {
		t.Fatalf("ack: %v", err)
	}
	if !f.rt.resendOnce(f.lastScheduled()) {
		t.Fatalf("resend did not run")
	}
	if !sameIDs(a.ids(), RecordID{lsn, 0}, RecordID{lsn, 2}, RecordID{lsn, 1}, RecordID{lsn, 3}) {
		t.Fatalf("a received %v", a.ids())
	}
}

func TestGapAdvancesThroughTrimmedRange(t *testing.T) {
	f := newRuntimeFixture(t)
	ctx := context.Background()
	mustAppend(t, f.log, "old0")
	mustAppend(t, f.log, "old1")
	lsn3 := mustAppend(t, f.log, "fresh")
	if _, err := f.log.Trim(ctx, 2); err != nil {
		t.Fatalf("trim: %v", err)
	}

	c1 := &captureSender{}
	if err := f.rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}
	f.rt.dispatchOnce()
	if !sameIDs(c1.ids(), RecordID{lsn3, 0}) {
		t.Fatalf("c1 received %v", c1.ids())
	}

	// acking the record past the gap advances the window through it
	if err := f.rt.AckBatch(ctx, []RecordID{{BatchID: lsn3, BatchIndex: 0}}); err != nil {
		t.Fatalf("ack: %v", err)
	}
	if got, ok := f.log.GetCheckpoint("sub-1"); !ok || got != lsn3 {
		t.Fatalf("checkpoint = %d ok=%v, want %d", got, ok, lsn3)
	}
	if got := f.rt.WindowLowerBound(); got != (RecordID{BatchID: lsn3 + 1}) {
		t.Fatalf("lower bound = %v", got)
	}
}

func TestMarkDeletedFinality(t *testing.T) {
	f := newRuntimeFixture(t)
	mustAppend(t, f.log, "r0")
	c1 := &captureSender{}
	if err := f.rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}

	f.rt.MarkDeleted()

	if f.rt.dispatchOnce() {
		t.Fatalf("dispatchOnce ran on deleted runtime")
	}
	if got := c1.ids(); len(got) != 0 {
		t.Fatalf("records sent after deletion: %v", got)
	}
	if err := f.rt.AttachConsumer("c2", &captureSender{}); err != ErrSubscriptionRemoved {
		t.Fatalf("attach after delete: %v", err)
	}
	if err := f.rt.AckBatch(context.Background(), []RecordID{{1, 0}}); err != ErrSubscriptionRemoved {
		t.Fatalf("ack after delete: %v", err)
	}
	if f.rt.resendOnce([]RecordID{{1, 0}}) {
		t.Fatalf("resend rescheduled on deleted runtime")
	}
	if f.rt.NumConsumers() != 0 {
		t.Fatalf("senders survived deletion")
	}
}

func TestDetachRetainsRuntimeState(t *testing.T) {
	f := newRuntimeFixture(t)
	lsn := mustAppend(t, f.log, "a", "b")
	c1 := &captureSender{}
	if err := f.rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}
	f.rt.dispatchOnce()
	ctx := context.Background()
	if err := f.rt.AckBatch(ctx, []RecordID{{lsn, 0}}); err != nil {
		t.Fatalf("ack: %v", err)
	}

	f.rt.DetachConsumer("c1")
	f.rt.DetachConsumer("c1") // idempotent
	if !f.rt.Valid() {
		t.Fatalf("detach invalidated runtime")
	}

	// a reconnect sees the retained window and ack state
	c2 := &captureSender{}
	if err := f.rt.AttachConsumer("c2", c2); err != nil {
		t.Fatalf("reattach: %v", err)
	}
	if err := f.rt.AckBatch(ctx, []RecordID{{lsn, 1}}); err != nil {
		t.Fatalf("ack: %v", err)
	}
	if got, ok := f.log.GetCheckpoint("sub-1"); !ok || got != lsn {
		t.Fatalf("checkpoint = %d ok=%v, want %d", got, ok, lsn)
	}
}

func TestDispatchParksUntilConsumerAttaches(t *testing.T) {
	f := newRuntimeFixture(t)
	mustAppend(t, f.log, "r0")

	done := make(chan bool, 1)
	go func() { done <- f.rt.dispatchOnce() }()

	select {
	case <-done:
		t.Fatalf("dispatchOnce returned without a consumer")
	case <-time.After(20 * time.Millisecond):
	}

	c1 := &captureSender{}
	if err := f.rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}
	select {
	case ok := <-done:
		if !ok {
			t.Fatalf("dispatchOnce reported deletion")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("dispatchOnce did not wake on attach")
	}
	if !sameIDs(c1.ids(), RecordID{1, 0}) {
		t.Fatalf("c1 received %v", c1.ids())
	}
}

func TestMarkDeletedWakesParkedDispatch(t *testing.T) {
	f := newRuntimeFixture(t)
	done := make(chan bool, 1)
	go func() { done <- f.rt.dispatchOnce() }()
	time.Sleep(10 * time.Millisecond)

	f.rt.MarkDeleted()
	select {
	case ok := <-done:
		if ok {
			t.Fatalf("parked dispatch continued after deletion")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("parked dispatch not woken by deletion")
	}
}

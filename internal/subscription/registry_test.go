package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/hstreamdb/hdelivery/internal/logstore"
	"github.com/hstreamdb/hdelivery/internal/metadata"
	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
)

func newTestRegistry(t *testing.T) (*Registry, *logstore.Opener) {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	opener := logstore.NewOpener(db)
	reg := NewRegistry(db, metadata.NewStore(db), opener, nil, Options{
		DispatchTick:   5 * time.Millisecond,
		AckTimeoutUnit: 20 * time.Millisecond,
	})
	t.Cleanup(reg.Close)
	return reg, opener
}

func testSub(id string) metadata.Subscription {
	return metadata.Subscription{
		ID:                id,
		StreamName:        "orders",
		AckTimeoutSeconds: 2,
		Offset:            metadata.Offset{Kind: metadata.OffsetEarliest},
	}
}

func mustCreateStream(t *testing.T, opener *logstore.Opener) *logstore.Log {
	t.Helper()
	log, err := opener.Create(context.Background(), "orders")
	if err != nil {
		t.Fatalf("create log: %v", err)
	}
	return log
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not reached within %v", timeout)
}

func TestCreateRequiresStream(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()

	if err := reg.Create(ctx, testSub("sub-1")); err != ErrStreamNotFound {
		t.Fatalf("want ErrStreamNotFound, got %v", err)
	}
	mustCreateStream(t, opener)
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := reg.Create(ctx, testSub("sub-1")); err != ErrSubscriptionExists {
		t.Fatalf("want ErrSubscriptionExists, got %v", err)
	}
	exists, err := reg.Exists("sub-1")
	if err != nil || !exists {
		t.Fatalf("exists = %v err=%v", exists, err)
	}
	subs, err := reg.List()
	if err != nil || len(subs) != 1 || subs[0].ID != "sub-1" {
		t.Fatalf("list = %+v err=%v", subs, err)
	}
}

func TestGetOrCreateRuntime(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()

	if _, err := reg.GetOrCreateRuntime(ctx, "missing"); err != ErrSubscriptionNotFound {
		t.Fatalf("want ErrSubscriptionNotFound, got %v", err)
	}

	mustCreateStream(t, opener)
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	rt1, err := reg.GetOrCreateRuntime(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	rt2, err := reg.GetOrCreateRuntime(ctx, "sub-1")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if rt1 != rt2 {
		t.Fatalf("distinct runtimes for one id")
	}
}

func TestDeleteWithoutRuntime(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()
	mustCreateStream(t, opener)

	if err := reg.Delete(ctx, "sub-1"); err != ErrSubscriptionNotFound {
		t.Fatalf("delete absent: %v", err)
	}
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := reg.Delete(ctx, "sub-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	exists, err := reg.Exists("sub-1")
	if err != nil || exists {
		t.Fatalf("subscription survived delete: exists=%v err=%v", exists, err)
	}
}

func TestDeleteWithAttachedConsumerDefersReap(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()
	mustCreateStream(t, opener)
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	rt, err := reg.GetOrCreateRuntime(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if err := rt.AttachConsumer("c1", &captureSender{}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := reg.Delete(ctx, "sub-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rt.Valid() {
		t.Fatalf("runtime valid after delete")
	}
	if reg.Lookup("sub-1") == nil {
		t.Fatalf("runtime reaped before last detach")
	}

	// session teardown reaps the deleted runtime
	reg.Detach("sub-1", "c1")
	if reg.Lookup("sub-1") != nil {
		t.Fatalf("runtime not reaped after last detach")
	}
	// re-creating the id afterwards is allowed
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("recreate: %v", err)
	}
}

func TestDeleteReapsIdleRuntime(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()
	mustCreateStream(t, opener)
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := reg.GetOrCreateRuntime(ctx, "sub-1"); err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if err := reg.Delete(ctx, "sub-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if reg.Lookup("sub-1") != nil {
		t.Fatalf("idle runtime not reaped on delete")
	}
}

func TestEndToEndDeliverAckResume(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()
	log := mustCreateStream(t, opener)
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	lsn := mustAppend(t, log, "a", "b")

	rt, err := reg.GetOrCreateRuntime(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	c1 := &captureSender{}
	if err := rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}

	waitFor(t, 2*time.Second, func() bool { return len(c1.ids()) >= 2 })
	if err := reg.AckBatch(ctx, "sub-1", []RecordID{{lsn, 0}, {lsn, 1}}); err != nil {
		t.Fatalf("ack: %v", err)
	}
	waitFor(t, 2*time.Second, func() bool {
		got, ok := log.GetCheckpoint("sub-1")
		return ok && got == lsn
	})

	// records appended after the ack flow through the same loop
	lsn2 := mustAppend(t, log, "c")
	waitFor(t, 2*time.Second, func() bool {
		for _, id := range c1.ids() {
			if id == (RecordID{lsn2, 0}) {
				return true
			}
		}
		return false
	})
}

func TestEndToEndResendAfterTimeout(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()
	log := mustCreateStream(t, opener)
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	lsn := mustAppend(t, log, "only")

	rt, err := reg.GetOrCreateRuntime(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	c1 := &captureSender{}
	if err := rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}

	// never ack: the record must arrive again via the resend timer
	waitFor(t, 5*time.Second, func() bool {
		n := 0
		for _, id := range c1.ids() {
			if id == (RecordID{lsn, 0}) {
				n++
			}
		}
		return n >= 2
	})

	// after acking, resends stop rescheduling
	if err := reg.AckBatch(ctx, "sub-1", []RecordID{{lsn, 0}}); err != nil {
		t.Fatalf("ack: %v", err)
	}
}

func TestAckAfterDeleteFails(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()
	mustCreateStream(t, opener)
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := reg.GetOrCreateRuntime(ctx, "sub-1"); err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if err := reg.Delete(ctx, "sub-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := reg.AckBatch(ctx, "sub-1", []RecordID{{1, 0}}); err != ErrSubscriptionRemoved {
		t.Fatalf("want ErrSubscriptionRemoved, got %v", err)
	}
}

func TestRuntimeResumesFromCheckpoint(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()
	log := mustCreateStream(t, opener)
	if err := reg.Create(ctx, testSub("sub-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	mustAppend(t, log, "a")
	lsn2 := mustAppend(t, log, "b")
	if err := log.CommitCheckpoint("sub-1", 1); err != nil {
		t.Fatalf("checkpoint: %v", err)
	}

	rt, err := reg.GetOrCreateRuntime(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if got := rt.WindowLowerBound(); got != (RecordID{BatchID: 2}) {
		t.Fatalf("lower bound = %v, want resume at checkpoint+1", got)
	}
	c1 := &captureSender{}
	if err := rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return len(c1.ids()) >= 1 })
	if got := c1.ids(); got[0] != (RecordID{lsn2, 0}) {
		t.Fatalf("first delivered = %v, want %v", got[0], RecordID{lsn2, 0})
	}
}

func TestLatestOffsetSkipsBacklog(t *testing.T) {
	reg, opener := newTestRegistry(t)
	ctx := context.Background()
	log := mustCreateStream(t, opener)
	mustAppend(t, log, "old")

	sub := testSub("sub-latest")
	sub.Offset = metadata.Offset{Kind: metadata.OffsetLatest}
	if err := reg.Create(ctx, sub); err != nil {
		t.Fatalf("create: %v", err)
	}
	rt, err := reg.GetOrCreateRuntime(ctx, "sub-latest")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	c1 := &captureSender{}
	if err := rt.AttachConsumer("c1", c1); err != nil {
		t.Fatalf("attach: %v", err)
	}

	lsn2 := mustAppend(t, log, "new")
	waitFor(t, 2*time.Second, func() bool { return len(c1.ids()) >= 1 })
	if got := c1.ids(); got[0] != (RecordID{lsn2, 0}) {
		t.Fatalf("latest subscription saw backlog: %v", got)
	}
}

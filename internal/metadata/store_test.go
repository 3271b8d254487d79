package metadata

import (
	"errors"
	"testing"

	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := Subscription{
		ID:                "sub-1",
		StreamName:        "orders",
		AckTimeoutSeconds: 60,
		Offset:            Offset{Kind: OffsetRecordID, BatchID: 10, BatchIndex: 2},
	}
	if err := s.Put(want); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get("sub-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestExistsAndDelete(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put(Subscription{ID: "sub-1", StreamName: "orders", AckTimeoutSeconds: 10, Offset: Offset{Kind: OffsetEarliest}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	ok, err := s.Exists("sub-1")
	if err != nil || !ok {
		t.Fatalf("exists = %v err=%v, want true", ok, err)
	}
	if err := s.Delete("sub-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	ok, err = s.Exists("sub-1")
	if err != nil || ok {
		t.Fatalf("exists after delete = %v err=%v, want false", ok, err)
	}
	// deleting again is a no-op
	if err := s.Delete("sub-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestListReturnsAll(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []string{"a", "b", "c"} {
		if err := s.Put(Subscription{ID: id, StreamName: "orders", AckTimeoutSeconds: 10, Offset: Offset{Kind: OffsetEarliest}}); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	subs, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("want 3 subscriptions, got %d", len(subs))
	}
	seen := map[string]bool{}
	for _, sub := range subs {
		seen[sub.ID] = true
	}
	for _, id := range []string{"a", "b", "c"} {
		if !seen[id] {
			t.Fatalf("missing %s in list", id)
		}
	}
}

package logstore

import (
	"context"
	"testing"

	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	l, err := OpenLog(db, "orders")
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	return l
}

func TestAppendAssignsOneLSNPerBatch(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()

	lsn1, err := l.Append(ctx, [][]byte{[]byte("a"), []byte("b")})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	lsn2, err := l.Append(ctx, [][]byte{[]byte("c")})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !(lsn1 < lsn2) {
		t.Fatalf("expected increasing LSNs: %d %d", lsn1, lsn2)
	}

	records, err := l.ReadBatch(lsn1)
	if err != nil {
		t.Fatalf("read batch: %v", err)
	}
	if len(records) != 2 || string(records[0]) != "a" || string(records[1]) != "b" {
		t.Fatalf("unexpected batch contents: %q", records)
	}
	if got := l.TailLSN(); got != lsn2 {
		t.Fatalf("tail = %d, want %d", got, lsn2)
	}
}

func TestReadBatchMissing(t *testing.T) {
	l := newTestLog(t)
	if _, err := l.ReadBatch(42); err != ErrBatchNotFound {
		t.Fatalf("want ErrBatchNotFound, got %v", err)
	}
}

func TestReaderReadsInOrder(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()
	if _, err := l.Append(ctx, [][]byte{[]byte("a"), []byte("b")}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := l.Append(ctx, [][]byte{[]byte("c")}); err != nil {
		t.Fatalf("append: %v", err)
	}

	r, err := OpenCheckpointedReader(l, "sub-1", 1)
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}
	res, err := r.Read(1000)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if res.Gap != nil {
		t.Fatalf("unexpected gap: %+v", res.Gap)
	}
	if len(res.Batches) != 2 {
		t.Fatalf("want 2 batches, got %d", len(res.Batches))
	}
	if len(res.Batches[0].Records) != 2 || len(res.Batches[1].Records) != 1 {
		t.Fatalf("unexpected batch sizes: %d %d", len(res.Batches[0].Records), len(res.Batches[1].Records))
	}

	// at tail, subsequent reads are empty
	res, err = r.Read(1000)
	if err != nil {
		t.Fatalf("read at tail: %v", err)
	}
	if res.Gap != nil || len(res.Batches) != 0 {
		t.Fatalf("expected empty result at tail, got %+v", res)
	}
}

func TestReaderReportsTrimmedPrefixAsGap(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := l.Append(ctx, [][]byte{[]byte("x")}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if _, err := l.Trim(ctx, 2); err != nil {
		t.Fatalf("trim: %v", err)
	}

	r, err := OpenCheckpointedReader(l, "sub-1", 1)
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}
	res, err := r.Read(1000)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if res.Gap == nil || res.Gap.Lo != 1 || res.Gap.Hi != 2 {
		t.Fatalf("want gap [1,2], got %+v", res.Gap)
	}
	if len(res.Batches) != 1 || res.Batches[0].LSN != 3 {
		t.Fatalf("want batch at LSN 3 after gap, got %+v", res.Batches)
	}
}

func TestCheckpointMonotonicAndRestoredOnOpen(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := l.Append(ctx, [][]byte{[]byte("x")}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	if err := l.CommitCheckpoint("sub-1", 3); err != nil {
		t.Fatalf("checkpoint: %v", err)
	}
	// lower commit is ignored
	if err := l.CommitCheckpoint("sub-1", 1); err != nil {
		t.Fatalf("checkpoint: %v", err)
	}
	got, ok := l.GetCheckpoint("sub-1")
	if !ok || got != 3 {
		t.Fatalf("checkpoint = %d ok=%v, want 3", got, ok)
	}

	r, err := OpenCheckpointedReader(l, "sub-1", 1)
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}
	if r.Pos() != 4 {
		t.Fatalf("reader pos = %d, want 4 (checkpoint+1)", r.Pos())
	}
}

func TestDeleteLogRemovesEntriesAndCheckpoints(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()
	if _, err := l.Append(ctx, [][]byte{[]byte("x")}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := l.CommitCheckpoint("sub-1", 1); err != nil {
		t.Fatalf("checkpoint: %v", err)
	}
	if err := DeleteLog(ctx, l.db, "orders"); err != nil {
		t.Fatalf("delete log: %v", err)
	}
	exists, err := LogExists(l.db, "orders")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatalf("log still exists after delete")
	}
	if _, ok := l.GetCheckpoint("sub-1"); ok {
		t.Fatalf("checkpoint survived delete")
	}
}

func TestBatchRoundTripRejectsCorruption(t *testing.T) {
	enc := EncodeBatch([][]byte{[]byte("hello"), []byte("world")})
	records, ok := DecodeBatch(enc)
	if !ok || len(records) != 2 {
		t.Fatalf("decode failed: ok=%v n=%d", ok, len(records))
	}
	enc[len(enc)/2] ^= 0xFF
	if _, ok := DecodeBatch(enc); ok {
		t.Fatalf("corrupted batch decoded successfully")
	}
}

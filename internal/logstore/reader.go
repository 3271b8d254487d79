package logstore

import (
	"context"
	"encoding/binary"

	"github.com/cockroachdb/pebble"
)

// Batch is one LSN's worth of records in read order.
type Batch struct {
	LSN     uint64
	Records [][]byte
}

// Gap is an LSN range reported by the store as containing no deliverable
// records (trimmed).
type Gap struct {
	Lo uint64
	Hi uint64
}

// ReadResult carries the outcome of one reader poll: an optional leading
// gap followed by zero or more data batches.
type ReadResult struct {
	Gap     *Gap
	Batches []Batch
}

// CheckpointedReader is a stateful forward cursor over one stream's log.
// It resumes from the persisted checkpoint when one exists, reports trimmed
// prefixes as gaps, and persists checkpoints monotonically.
type CheckpointedReader struct {
	log  *Log
	name string
	next uint64
	max  uint64
}

// OpenCheckpointedReader positions a reader for the named subscription.
// A persisted checkpoint takes precedence over startLSN.
func OpenCheckpointedReader(log *Log, name string, startLSN uint64) (*CheckpointedReader, error) {
	r := &CheckpointedReader{log: log, name: name, max: LSNMax}
	if startLSN == 0 {
		startLSN = 1
	}
	r.next = startLSN
	if ckpt, ok := log.GetCheckpoint(name); ok && ckpt+1 > startLSN {
		r.next = ckpt + 1
	}
	return r, nil
}

// Pos returns the next LSN the reader will deliver.
func (r *CheckpointedReader) Pos() uint64 { return r.next }

// Seek repositions the reader.
func (r *CheckpointedReader) Seek(lsn uint64) {
	if lsn == 0 {
		lsn = 1
	}
	r.next = lsn
}

// Read returns available batches from the current position, stopping once
// maxRecords records have been collected. Batches are never split, so the
// last batch can take the total past maxRecords. Reads are non-blocking:
// an empty result means the reader is at the tail. A trimmed prefix is
// reported once as a Gap.
func (r *CheckpointedReader) Read(maxRecords int) (ReadResult, error) {
	if maxRecords <= 0 {
		maxRecords = 1
	}
	var res ReadResult

	first := r.log.FirstLSN()
	if r.next < first {
		res.Gap = &Gap{Lo: r.next, Hi: first - 1}
		r.next = first
	}

	tail := r.log.TailLSN()
	if r.next > tail || r.next > r.max {
		return res, nil
	}

	low := KeyLogEntry(r.log.stream, r.next)
	hi := KeyLogEntry(r.log.stream, r.max)
	iter, err := r.log.db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: append(hi, 0x00)})
	if err != nil {
		return res, err
	}
	defer iter.Close()

	total := 0
	for ok := iter.First(); ok && total < maxRecords; ok = iter.Next() {
		k := iter.Key()
		lsn := binary.BigEndian.Uint64(k[len(k)-8:])
		records, okDec := DecodeBatch(iter.Value())
		if !okDec {
			continue
		}
		res.Batches = append(res.Batches, Batch{LSN: lsn, Records: records})
		total += len(records)
		r.next = lsn + 1
	}
	return res, nil
}

// Checkpoint durably records that every LSN up to and including lsn has
// been processed by this subscription.
func (r *CheckpointedReader) Checkpoint(ctx context.Context, lsn uint64) error {
	return r.log.CommitCheckpoint(r.name, lsn)
}

// CommitCheckpoint stores the checkpoint LSN for a subscription
// idempotently. A commit lower than the stored value is ignored, keeping
// checkpoints monotonically non-decreasing.
func (l *Log) CommitCheckpoint(subscription string, lsn uint64) error {
	// Serialize the read-compare-write so concurrent commits cannot regress.
	l.mu.Lock()
	defer l.mu.Unlock()
	key := KeyCheckpoint(l.stream, subscription)
	cur, err := l.db.Get(key)
	if err == nil && len(cur) >= 8 {
		if lsn <= binary.BigEndian.Uint64(cur[:8]) {
			return nil
		}
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], lsn)
	return l.db.Set(key, b[:])
}

// GetCheckpoint loads the checkpoint LSN for a subscription.
func (l *Log) GetCheckpoint(subscription string) (uint64, bool) {
	cur, err := l.db.Get(KeyCheckpoint(l.stream, subscription))
	if err != nil || len(cur) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(cur[:8]), true
}

// DeleteCheckpoint removes a subscription's checkpoint.
func (l *Log) DeleteCheckpoint(subscription string) error {
	return l.db.Delete(KeyCheckpoint(l.stream, subscription))
}
